package arabicdate

import (
	"context"
	"fmt"
	"reflect"
)

// TemplateHelpers returns template functions bound to f. Every helper takes
// the template data first; the locale is read from it using localeKey
// (default "Locale"). Dates are converted only when that locale is supported.
func TemplateHelpers(f *Formatter, localeKey string) map[string]any {
	if f == nil {
		f = NewFormatter()
	}

	return map[string]any{
		"arabic_date": func(data any, value any, format ...string) (string, error) {
			date, err := helperDate(f, value)
			if err != nil {
				return "", err
			}
			return f.FormatForLocale(extractLocale(data, localeKey), date, firstFormat(format)), nil
		},

		"arabic_date_custom": func(data any, value any, format ...string) (string, error) {
			date, err := helperDate(f, value)
			if err != nil {
				return "", err
			}
			cfg := f.Config()
			spec := firstFormat(format)
			if spec == "" {
				spec = cfg.ResolvedCustomFormat()
			}
			if !cfg.Supports(extractLocale(data, localeKey)) {
				if spec != CustomFormat {
					return date.Format(spec), nil
				}
				cfg = nativeConfig(cfg)
			}
			return f.formatCustom(cfg, date, spec), nil
		},

		"arabic_date_with_day": func(data any, value any) (string, error) {
			date, err := helperDate(f, value)
			if err != nil {
				return "", err
			}
			cfg := f.Config()
			if !cfg.Supports(extractLocale(data, localeKey)) {
				cfg = nativeConfig(cfg)
			}
			return f.formatWithWeekday(cfg, date), nil
		},

		"arabic_datetime": func(data any, value any) (string, error) {
			date, err := helperDate(f, value)
			if err != nil {
				return "", err
			}
			cfg := f.Config()
			if !cfg.Supports(extractLocale(data, localeKey)) {
				cfg = nativeConfig(cfg)
			}
			return f.formatDateTime(cfg, date), nil
		},

		"arabic_numerals": func(data any, value any) string {
			text := fmt.Sprint(value)
			if !f.Supports(extractLocale(data, localeKey)) {
				return text
			}
			return ToArabicNumerals(text)
		},
	}
}

// nativeConfig switches every substitution off so the field-by-field
// compositions render with Latin digits and English names. Whole-string
// formats must not go through it: the meridiem stage has no flag.
func nativeConfig(cfg ConversionConfig) ConversionConfig {
	cfg.EnableNumerals = false
	cfg.EnableMonths = false
	cfg.EnableDays = false
	return cfg
}

func helperDate(f *Formatter, value any) (DateValue, error) {
	date, ok := asDate(value, f.location)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, value)
	}
	return date, nil
}

func firstFormat(format []string) string {
	if len(format) == 0 {
		return ""
	}
	return format[0]
}

// extractLocale reads the locale from template data: a string, a context
// carrying ContextWithLocale, a map entry or a struct field named localeKey.
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case string:
		return d
	case context.Context:
		return LocaleFromContext(d)
	case map[string]any:
		if v, ok := d[localeKey].(string); ok {
			return v
		}
		return ""
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
