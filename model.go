package arabicdate

import (
	"log/slog"
	"slices"
	"time"
)

// AttributeSource exposes the raw attributes of a record loaded from storage.
type AttributeSource interface {
	Attribute(name string) (any, bool)
}

// Attributes is a map backed AttributeSource.
type Attributes map[string]any

// Attribute implements AttributeSource.
func (a Attributes) Attribute(name string) (any, bool) {
	value, ok := a[name]
	return value, ok
}

// ModelDates decorates the date attributes of a record at the point where it
// is materialized, converting the listed fields on read.
type ModelDates struct {
	formatter *Formatter
	attrs     AttributeSource
	fields    []string
}

// Model decorates attrs; only the listed fields are converted by Get.
func (f *Formatter) Model(attrs AttributeSource, fields ...string) *ModelDates {
	return &ModelDates{
		formatter: f,
		attrs:     attrs,
		fields:    slices.Clone(fields),
	}
}

// Fields returns the attribute names converted by Get.
func (m *ModelDates) Fields() []string {
	return slices.Clone(m.fields)
}

// ConversionEnabled reports whether locale triggers conversion.
func (m *ModelDates) ConversionEnabled(locale string) bool {
	return m.formatter.Supports(locale)
}

// Get returns the attribute value. Listed date fields read in a supported
// locale come back as *ArabicDate; everything else is returned as stored.
func (m *ModelDates) Get(field, locale string) any {
	if m.attrs == nil {
		return nil
	}
	value, ok := m.attrs.Attribute(field)
	if !ok || !isTypedDate(value) {
		return value
	}

	cfg := m.formatter.Config()
	if !cfg.AutoConvertOnRetrieval || !slices.Contains(m.fields, field) || !cfg.Supports(locale) {
		return value
	}

	date, ok := asDate(value, m.formatter.location)
	if !ok {
		return value
	}
	return m.formatter.Wrap(date, locale)
}

// OriginalDate parses the raw attribute without any conversion.
func (m *ModelDates) OriginalDate(field string) (DateValue, bool) {
	value, ok := m.raw(field)
	if !ok {
		return nil, false
	}
	date, ok := asDate(value, m.formatter.location)
	if !ok {
		m.formatter.logger.Debug("attribute is not a date", slog.String("field", field))
	}
	return date, ok
}

// ArabicDate wraps the attribute for locale, or reports false when the
// attribute is missing, is not a date, or the locale is not supported.
func (m *ModelDates) ArabicDate(field, locale string) (*ArabicDate, bool) {
	if !m.formatter.Supports(locale) {
		return nil, false
	}
	date, ok := m.OriginalDate(field)
	if !ok {
		return nil, false
	}
	return m.formatter.Wrap(date, locale), true
}

// ArabicString converts the attribute with format (default format when
// empty) regardless of locale.
func (m *ModelDates) ArabicString(field, format string) (string, bool) {
	date, ok := m.OriginalDate(field)
	if !ok {
		return "", false
	}
	return m.formatter.FormatDate(date, format), true
}

// FormattedDate converts the attribute when locale is supported and renders
// it natively otherwise.
func (m *ModelDates) FormattedDate(field, format, locale string) (string, bool) {
	date, ok := m.OriginalDate(field)
	if !ok {
		return "", false
	}
	return m.formatter.FormatForLocale(locale, date, format), true
}

func (m *ModelDates) raw(field string) (any, bool) {
	if m.attrs == nil {
		return nil, false
	}
	value, ok := m.attrs.Attribute(field)
	if !ok || isEmptyAttribute(value) {
		return nil, false
	}
	return value, true
}

// isTypedDate reports whether value already is a date. Raw strings and
// bytes are left for OriginalDate to parse.
func isTypedDate(value any) bool {
	switch value.(type) {
	case time.Time, *time.Time, DateValue:
		return true
	default:
		return false
	}
}

func isEmptyAttribute(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	default:
		return false
	}
}
