package arabicdate

import (
	"fmt"
	"strings"
	"time"
)

// DateValue is the read-only view of a point in time the formatter works on.
// Names are rendered in English, the reference language the Arabic tables
// are keyed on.
type DateValue interface {
	Year() int
	Month() time.Month
	Day() int
	Hour() int
	Minute() int
	Second() int
	// WeekdayName returns the full English weekday name, e.g. "Monday".
	WeekdayName() string
	// Format renders the value using PHP date() tokens, e.g. "Y-m-d H:i:s".
	Format(spec string) string
	// WithMonth returns a copy with the month replaced.
	WithMonth(month time.Month) DateValue
}

// Date is the DateValue implementation backed by time.Time.
type Date struct {
	t time.Time
}

var _ DateValue = Date{}

// parseLayouts are tried in order by ParseDate.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date{t: t}
}

// ParseDate parses the date representations storage layers usually return.
// Values without a zone are read in loc, or UTC when loc is nil.
func ParseDate(value string, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return Date{t: t}, nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int           { return d.t.Year() }
func (d Date) Month() time.Month   { return d.t.Month() }
func (d Date) Day() int            { return d.t.Day() }
func (d Date) Hour() int           { return d.t.Hour() }
func (d Date) Minute() int         { return d.t.Minute() }
func (d Date) Second() int         { return d.t.Second() }
func (d Date) WeekdayName() string { return d.t.Weekday().String() }

// IsZero reports whether the underlying time is the zero instant.
func (d Date) IsZero() bool { return d.t.IsZero() }

// WithMonth keeps year, clock and location and clamps the day to the length
// of the target month, so WithMonth(time.February) on January 31st lands on
// the last day of February instead of rolling into March.
func (d Date) WithMonth(month time.Month) DateValue {
	day := d.t.Day()
	if last := daysIn(month, d.t.Year()); day > last {
		day = last
	}
	return Date{t: time.Date(
		d.t.Year(), month, day,
		d.t.Hour(), d.t.Minute(), d.t.Second(), d.t.Nanosecond(),
		d.t.Location(),
	)}
}

// String renders the value as "Y-m-d H:i:s".
func (d Date) String() string {
	return d.Format(DefaultFormat)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// asDate converts the date-like values accepted at the package boundaries.
func asDate(value any, loc *time.Location) (DateValue, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case *ArabicDate:
		if v == nil {
			return nil, false
		}
		return v.Original(), true
	case DateValue:
		return v, true
	case time.Time:
		if v.IsZero() {
			return nil, false
		}
		return NewDate(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil, false
		}
		return NewDate(*v), true
	case []byte:
		return asDate(string(v), loc)
	case string:
		date, err := ParseDate(v, loc)
		if err != nil {
			return nil, false
		}
		return date, true
	default:
		return nil, false
	}
}
