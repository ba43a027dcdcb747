package arabicdate

import "errors"

// ErrInvalidDate indicates that a value could not be read as a date.
var ErrInvalidDate = errors.New("arabicdate: invalid date")

// ErrUnsupportedConfigFormat is returned for config files with an unknown extension.
var ErrUnsupportedConfigFormat = errors.New("arabicdate: unsupported config format")
