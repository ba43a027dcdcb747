package arabicdate

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Formatter renders dates in Arabic. It keeps no mutable state; the
// configuration is read from its ConfigSource at the start of every call, so
// runtime changes apply to the next call.
type Formatter struct {
	source   ConfigSource
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

type formatterConfig struct {
	source   ConfigSource
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

// FormatterOption configures a Formatter.
type FormatterOption func(*formatterConfig)

// WithConfig uses a fixed configuration snapshot.
func WithConfig(cfg ConversionConfig) FormatterOption {
	return func(fc *formatterConfig) {
		fc.source = cfg.clone()
	}
}

// WithConfigSource reads the configuration from source on every call.
func WithConfigSource(source ConfigSource) FormatterOption {
	return func(fc *formatterConfig) {
		fc.source = source
	}
}

func WithLogger(logger *slog.Logger) FormatterOption {
	return func(fc *formatterConfig) {
		fc.logger = logger
	}
}

// WithClock replaces time.Now for the Now/Today/Yesterday/Tomorrow factories.
func WithClock(now func() time.Time) FormatterOption {
	return func(fc *formatterConfig) {
		fc.now = now
	}
}

// WithLocation sets the zone used by the factories and when parsing values
// that carry no zone.
func WithLocation(loc *time.Location) FormatterOption {
	return func(fc *formatterConfig) {
		fc.location = loc
	}
}

// NewFormatter builds a Formatter. Without options it uses DefaultConfig,
// time.Now, UTC and a logger that discards everything.
func NewFormatter(opts ...FormatterOption) *Formatter {
	cfg := formatterConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.source == nil {
		cfg.source = DefaultConfig()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.location == nil {
		cfg.location = time.UTC
	}

	return &Formatter{
		source:   cfg.source,
		logger:   cfg.logger,
		now:      cfg.now,
		location: cfg.location,
	}
}

// Config returns the configuration snapshot the next call would use.
func (f *Formatter) Config() ConversionConfig {
	if f == nil || f.source == nil {
		return DefaultConfig()
	}
	return f.source.Config()
}

// FormatDate renders date with format, or the configured default format when
// format is empty, and converts the whole result with Substitute.
func (f *Formatter) FormatDate(date DateValue, format string) string {
	cfg := f.Config()
	if format == "" {
		format = cfg.ResolvedDefaultFormat()
	}
	return f.substitute(cfg, date.Format(format), date)
}

// FormatCustom renders date with format, or the configured custom format
// when format is empty. The "d F Y" composition is built field by field;
// every other format goes through Substitute.
func (f *Formatter) FormatCustom(date DateValue, format string) string {
	return f.formatCustom(f.Config(), date, format)
}

func (f *Formatter) formatCustom(cfg ConversionConfig, date DateValue, format string) string {
	if format == "" {
		format = cfg.ResolvedCustomFormat()
	}
	if format != CustomFormat {
		return f.substitute(cfg, date.Format(format), date)
	}

	return strings.Join([]string{
		f.dayField(cfg, date),
		f.monthField(cfg, date),
		f.yearField(cfg, date),
	}, " ")
}

// FormatWithWeekday returns "{weekday} {day} {month} {year}".
func (f *Formatter) FormatWithWeekday(date DateValue) string {
	return f.formatWithWeekday(f.Config(), date)
}

func (f *Formatter) formatWithWeekday(cfg ConversionConfig, date DateValue) string {
	return strings.Join([]string{
		f.weekdayField(cfg, date),
		f.dayField(cfg, date),
		f.monthField(cfg, date),
		f.yearField(cfg, date),
	}, " ")
}

// FormatDateTime returns FormatCustom(date, "") followed by the H:i:s clock.
// The clock digits follow the numerals flag only.
func (f *Formatter) FormatDateTime(date DateValue) string {
	return f.formatDateTime(f.Config(), date)
}

func (f *Formatter) formatDateTime(cfg ConversionConfig, date DateValue) string {
	clock := date.Format(TimeFormat)
	if cfg.EnableNumerals {
		clock = ToArabicNumerals(clock)
	}
	return f.formatCustom(cfg, date, "") + " " + clock
}

// Substitute converts an already rendered date string. The stages run in a
// fixed order: meridiem markers, digits, month names, weekday names. Month
// names are matched on date.WithMonth(m).Format("F") for each month.
func (f *Formatter) Substitute(text string, date DateValue) string {
	return f.substitute(f.Config(), text, date)
}

// FormatForLocale converts only when locale is supported and otherwise
// returns the native rendering of the resolved format.
func (f *Formatter) FormatForLocale(locale string, date DateValue, format string) string {
	if wrapped, ok := date.(*ArabicDate); ok && wrapped != nil {
		date = wrapped.Original()
	}
	cfg := f.Config()
	if format == "" {
		format = cfg.ResolvedDefaultFormat()
	}
	if !cfg.Supports(locale) {
		f.logger.Debug("arabic conversion skipped", slog.String("locale", locale))
		return date.Format(format)
	}
	return f.substitute(cfg, date.Format(format), date)
}

// Supports reports whether locale is in the configured allow-list.
func (f *Formatter) Supports(locale string) bool {
	return f.Config().Supports(locale)
}

// ToArabicNumerals is ToArabicNumerals, kept on the formatter for callers
// that only hold a *Formatter.
func (f *Formatter) ToArabicNumerals(text string) string {
	return ToArabicNumerals(text)
}

// FromArabicNumerals is FromArabicNumerals on the formatter.
func (f *Formatter) FromArabicNumerals(text string) string {
	return FromArabicNumerals(text)
}

func (f *Formatter) substitute(cfg ConversionConfig, text string, date DateValue) string {
	result := text

	for _, entry := range arabicMeridiem {
		result = strings.ReplaceAll(result, entry.Latin, entry.Arabic)
	}

	if cfg.EnableNumerals {
		result = ToArabicNumerals(result)
	}

	if cfg.EnableMonths {
		for month := time.January; month <= time.December; month++ {
			latin := date.WithMonth(month).Format("F")
			if latin == "" {
				continue
			}
			result = strings.ReplaceAll(result, latin, MonthName(int(month)))
		}
	}

	if cfg.EnableDays {
		for _, entry := range arabicWeekdays {
			result = strings.ReplaceAll(result, entry.Latin, entry.Arabic)
		}
	}

	return result
}

func (f *Formatter) dayField(cfg ConversionConfig, date DateValue) string {
	day := strconv.Itoa(date.Day())
	if cfg.EnableNumerals {
		return ToArabicNumerals(day)
	}
	return day
}

func (f *Formatter) yearField(cfg ConversionConfig, date DateValue) string {
	year := strconv.Itoa(date.Year())
	if cfg.EnableNumerals {
		return ToArabicNumerals(year)
	}
	return year
}

func (f *Formatter) monthField(cfg ConversionConfig, date DateValue) string {
	if !cfg.EnableMonths {
		return date.Format("F")
	}
	name := MonthName(int(date.Month()))
	if name == "" {
		f.logger.Debug("month out of range", slog.Int("month", int(date.Month())))
	}
	return name
}

func (f *Formatter) weekdayField(cfg ConversionConfig, date DateValue) string {
	latin := date.WeekdayName()
	if !cfg.EnableDays {
		return latin
	}
	arabic, ok := lookupWeekday(latin)
	if !ok {
		f.logger.Debug("unknown weekday name", slog.String("weekday", latin))
	}
	return arabic
}
