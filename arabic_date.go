package arabicdate

import (
	"log/slog"
	"time"
)

// ArabicDate wraps a DateValue so that Format converts to Arabic when the
// wrapper is enabled and its locale is supported. Every other DateValue
// method delegates to the wrapped value. Values come from Formatter.Wrap or
// the factories; a zero ArabicDate formats as "".
type ArabicDate struct {
	date      DateValue
	formatter *Formatter
	locale    string
	enabled   bool
}

var _ DateValue = &ArabicDate{}

// Wrap returns an enabled ArabicDate for date in locale.
func (f *Formatter) Wrap(date DateValue, locale string) *ArabicDate {
	if inner, ok := date.(*ArabicDate); ok && inner != nil {
		date = inner.date
	}
	return &ArabicDate{
		date:      date,
		formatter: f,
		locale:    normalizeLocale(locale),
		enabled:   true,
	}
}

// Parse reads value with ParseDate in the formatter's location and wraps it.
func (f *Formatter) Parse(value, locale string) (*ArabicDate, error) {
	date, err := ParseDate(value, f.location)
	if err != nil {
		return nil, err
	}
	return f.Wrap(date, locale), nil
}

// Now wraps the current instant.
func (f *Formatter) Now(locale string) *ArabicDate {
	return f.Wrap(NewDate(f.now().In(f.location)), locale)
}

// Today wraps midnight of the current day.
func (f *Formatter) Today(locale string) *ArabicDate {
	return f.Wrap(NewDate(f.startOfDay(0)), locale)
}

// Yesterday wraps midnight of the previous day.
func (f *Formatter) Yesterday(locale string) *ArabicDate {
	return f.Wrap(NewDate(f.startOfDay(-1)), locale)
}

// Tomorrow wraps midnight of the next day.
func (f *Formatter) Tomorrow(locale string) *ArabicDate {
	return f.Wrap(NewDate(f.startOfDay(1)), locale)
}

func (f *Formatter) startOfDay(offset int) time.Time {
	now := f.now().In(f.location)
	return time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, f.location)
}

// WithConversion returns a copy with conversion switched on or off.
func (a *ArabicDate) WithConversion(enabled bool) *ArabicDate {
	out := *a
	out.enabled = enabled
	return &out
}

// Locale returns the locale the wrapper was created for.
func (a *ArabicDate) Locale() string { return a.locale }

// Enabled reports whether the wrapper converts at all.
func (a *ArabicDate) Enabled() bool { return a.enabled }

// Original returns the wrapped value.
func (a *ArabicDate) Original() DateValue { return a.date }

// Time returns the wrapped time.Time when the wrapped value exposes one.
func (a *ArabicDate) Time() (time.Time, bool) {
	timed, ok := a.date.(interface{ Time() time.Time })
	if !ok {
		return time.Time{}, false
	}
	return timed.Time(), true
}

func (a *ArabicDate) Year() int           { return a.date.Year() }
func (a *ArabicDate) Month() time.Month   { return a.date.Month() }
func (a *ArabicDate) Day() int            { return a.date.Day() }
func (a *ArabicDate) Hour() int           { return a.date.Hour() }
func (a *ArabicDate) Minute() int         { return a.date.Minute() }
func (a *ArabicDate) Second() int         { return a.date.Second() }
func (a *ArabicDate) WeekdayName() string { return a.date.WeekdayName() }

// WithMonth returns a wrapper around the wrapped value's WithMonth copy.
func (a *ArabicDate) WithMonth(month time.Month) DateValue {
	out := *a
	out.date = a.date.WithMonth(month)
	return &out
}

// Format converts when the wrapper is enabled and the locale is supported,
// and returns the native rendering otherwise. An empty spec means the
// configured default format.
func (a *ArabicDate) Format(spec string) string {
	if a == nil || a.date == nil {
		return ""
	}
	f := a.owner()
	cfg := f.Config()
	if spec == "" {
		spec = cfg.ResolvedDefaultFormat()
	}
	if !a.enabled || !cfg.Supports(a.locale) {
		f.logger.Debug("arabic conversion skipped",
			slog.String("locale", a.locale),
			slog.Bool("enabled", a.enabled),
		)
		return a.date.Format(spec)
	}
	return f.substitute(cfg, a.date.Format(spec), a.date)
}

// owner returns the formatter the wrapper was built by, or a default one.
func (a *ArabicDate) owner() *Formatter {
	if a.formatter == nil {
		return defaultFormatter
	}
	return a.formatter
}

var defaultFormatter = NewFormatter()

// String renders the configured default format through Format.
func (a *ArabicDate) String() string {
	return a.Format("")
}

// ToArabic converts with the default format regardless of locale.
func (a *ArabicDate) ToArabic() string {
	if a == nil || a.date == nil {
		return ""
	}
	return a.owner().FormatDate(a.date, "")
}

// ToArabicFormat converts with spec regardless of locale.
func (a *ArabicDate) ToArabicFormat(spec string) string {
	if a == nil || a.date == nil {
		return ""
	}
	return a.owner().FormatDate(a.date, spec)
}

// ToArabicWithDay returns the "{weekday} {day} {month} {year}" rendering.
func (a *ArabicDate) ToArabicWithDay() string {
	if a == nil || a.date == nil {
		return ""
	}
	return a.owner().FormatWithWeekday(a.date)
}

// ToArabicWithTime returns the custom date followed by the clock.
func (a *ArabicDate) ToArabicWithTime() string {
	if a == nil || a.date == nil {
		return ""
	}
	return a.owner().FormatDateTime(a.date)
}
