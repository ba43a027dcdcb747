package arabicdate

import (
	"slices"
	"sync/atomic"
)

const (
	// DefaultFormat is used when no format is given or configured.
	DefaultFormat = "Y-m-d H:i:s"
	// CustomFormat is the "day month-name year" composition. Formatting with
	// exactly this spec builds the result field by field.
	CustomFormat = "d F Y"
	// TimeFormat renders the clock part of FormatDateTime.
	TimeFormat = "H:i:s"
)

var defaultSupportedLocales = []string{"ar"}

// ConversionConfig captures which substitutions run and which locales
// trigger conversion.
type ConversionConfig struct {
	DefaultFormat          string   `json:"default_format" yaml:"default_format" toml:"default_format" env:"DEFAULT_FORMAT"`
	CustomFormat           string   `json:"custom_format" yaml:"custom_format" toml:"custom_format" env:"CUSTOM_FORMAT"`
	EnableNumerals         bool     `json:"enable_arabic_numerals" yaml:"enable_arabic_numerals" toml:"enable_arabic_numerals" env:"ENABLE_ARABIC_NUMERALS"`
	EnableMonths           bool     `json:"enable_arabic_months" yaml:"enable_arabic_months" toml:"enable_arabic_months" env:"ENABLE_ARABIC_MONTHS"`
	EnableDays             bool     `json:"enable_arabic_days" yaml:"enable_arabic_days" toml:"enable_arabic_days" env:"ENABLE_ARABIC_DAYS"`
	SupportedLocales       []string `json:"supported_languages" yaml:"supported_languages" toml:"supported_languages" env:"SUPPORTED_LANGUAGES" envSeparator:","`
	AutoConvertOnRetrieval bool     `json:"auto_convert_on_retrieval" yaml:"auto_convert_on_retrieval" toml:"auto_convert_on_retrieval" env:"AUTO_CONVERT_ON_RETRIEVAL"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() ConversionConfig {
	return ConversionConfig{
		DefaultFormat:          DefaultFormat,
		CustomFormat:           CustomFormat,
		EnableNumerals:         true,
		EnableMonths:           true,
		EnableDays:             true,
		SupportedLocales:       slices.Clone(defaultSupportedLocales),
		AutoConvertOnRetrieval: true,
	}
}

// ResolvedDefaultFormat returns DefaultFormat, or the package default when unset.
func (c ConversionConfig) ResolvedDefaultFormat() string {
	if c.DefaultFormat == "" {
		return DefaultFormat
	}
	return c.DefaultFormat
}

// ResolvedCustomFormat returns CustomFormat, or the package default when unset.
func (c ConversionConfig) ResolvedCustomFormat() string {
	if c.CustomFormat == "" {
		return CustomFormat
	}
	return c.CustomFormat
}

// ResolvedLocales returns the normalized supported locales. A nil list means
// the default ["ar"]; an empty non-nil list disables conversion everywhere.
func (c ConversionConfig) ResolvedLocales() []string {
	if c.SupportedLocales == nil {
		return slices.Clone(defaultSupportedLocales)
	}
	return normalizeLocales(c.SupportedLocales)
}

// Config lets a plain ConversionConfig act as a fixed ConfigSource.
func (c ConversionConfig) Config() ConversionConfig {
	return c
}

// ConfigSource supplies the configuration snapshot read on every formatting call.
type ConfigSource interface {
	Config() ConversionConfig
}

// ConfigSourceFunc adapts a function to ConfigSource.
type ConfigSourceFunc func() ConversionConfig

// Config implements ConfigSource.
func (fn ConfigSourceFunc) Config() ConversionConfig {
	return fn()
}

// Settings is a ConfigSource that can be replaced at runtime. Readers never
// block; a Store is visible to the next formatting call.
type Settings struct {
	current atomic.Pointer[ConversionConfig]
}

var _ ConfigSource = &Settings{}

// NewSettings seeds Settings with cfg.
func NewSettings(cfg ConversionConfig) *Settings {
	s := &Settings{}
	s.Store(cfg)
	return s
}

// Config implements ConfigSource. A nil or empty Settings yields DefaultConfig.
func (s *Settings) Config() ConversionConfig {
	if s == nil {
		return DefaultConfig()
	}
	if cfg := s.current.Load(); cfg != nil {
		return cfg.clone()
	}
	return DefaultConfig()
}

// Store replaces the current configuration.
func (s *Settings) Store(cfg ConversionConfig) {
	if s == nil {
		return
	}
	next := cfg.clone()
	s.current.Store(&next)
}

// Update applies fn to a copy of the current configuration and stores the
// result. fn may run more than once when updates race.
func (s *Settings) Update(fn func(*ConversionConfig)) {
	if s == nil || fn == nil {
		return
	}
	for {
		old := s.current.Load()
		next := DefaultConfig()
		if old != nil {
			next = old.clone()
		}
		fn(&next)
		next = next.clone()
		if s.current.CompareAndSwap(old, &next) {
			return
		}
	}
}

func (c ConversionConfig) clone() ConversionConfig {
	out := c
	if c.SupportedLocales != nil {
		out.SupportedLocales = slices.Clone(c.SupportedLocales)
	}
	return out
}
