package arabicdate

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return referenceTime
}

func TestArabicDateFormatGate(t *testing.T) {
	f := NewFormatter()
	date := NewDate(referenceTime)

	tests := []struct {
		name     string
		wrapped  *ArabicDate
		spec     string
		expected string
	}{
		{"supported", f.Wrap(date, "ar"), "d F Y", "١٥ يناير ٢٠٢٤"},
		{"regional", f.Wrap(date, "ar-SA"), "l", "الاثنين"},
		{"unsupported", f.Wrap(date, "en"), "d F Y", "15 January 2024"},
		{"disabled", f.Wrap(date, "ar").WithConversion(false), "d F Y", "15 January 2024"},
		{"default spec", f.Wrap(date, "ar"), "", "٢٠٢٤-٠١-١٥ ١٤:٣٠:٠٠"},
		{"default spec native", f.Wrap(date, "fr"), "", "2024-01-15 14:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wrapped.Format(tt.spec); got != tt.expected {
				t.Errorf("Format(%q) = %q; want %q", tt.spec, got, tt.expected)
			}
		})
	}
}

func TestArabicDateString(t *testing.T) {
	f := NewFormatter()
	wrapped := f.Wrap(NewDate(referenceTime), "ar")

	if got := fmt.Sprint(wrapped); got != "٢٠٢٤-٠١-١٥ ١٤:٣٠:٠٠" {
		t.Fatalf("String() = %q", got)
	}

	native := f.Wrap(NewDate(referenceTime), "en")
	if got := native.String(); got != "2024-01-15 14:30:00" {
		t.Fatalf("native String() = %q", got)
	}
}

func TestArabicDateExplicitConversionIgnoresLocale(t *testing.T) {
	f := NewFormatter()
	wrapped := f.Wrap(NewDate(referenceTime), "en").WithConversion(false)

	if got := wrapped.ToArabic(); got != "٢٠٢٤-٠١-١٥ ١٤:٣٠:٠٠" {
		t.Fatalf("ToArabic() = %q", got)
	}
	if got := wrapped.ToArabicFormat("d F Y"); got != "١٥ يناير ٢٠٢٤" {
		t.Fatalf("ToArabicFormat() = %q", got)
	}
	if got := wrapped.ToArabicWithDay(); got != "الاثنين ١٥ يناير ٢٠٢٤" {
		t.Fatalf("ToArabicWithDay() = %q", got)
	}
	if got := wrapped.ToArabicWithTime(); got != "١٥ يناير ٢٠٢٤ ١٤:٣٠:٠٠" {
		t.Fatalf("ToArabicWithTime() = %q", got)
	}
}

func TestArabicDateDelegation(t *testing.T) {
	f := NewFormatter()
	wrapped := f.Wrap(NewDate(referenceTime), "ar")

	if wrapped.Year() != 2024 || wrapped.Month() != time.January || wrapped.Day() != 15 {
		t.Fatalf("date fields not delegated")
	}
	if wrapped.Hour() != 14 || wrapped.Minute() != 30 || wrapped.Second() != 0 {
		t.Fatalf("clock fields not delegated")
	}
	if wrapped.WeekdayName() != "Monday" {
		t.Fatalf("WeekdayName() = %q", wrapped.WeekdayName())
	}
	if wrapped.Locale() != "ar" || !wrapped.Enabled() {
		t.Fatalf("unexpected wrapper state %q %v", wrapped.Locale(), wrapped.Enabled())
	}

	moved := wrapped.WithMonth(time.June)
	if moved.Month() != time.June {
		t.Fatalf("WithMonth() month = %v", moved.Month())
	}
	if got := moved.Format("F"); got != "يونيو" {
		t.Fatalf("WithMonth keeps the wrapper, got %q", got)
	}
	if wrapped.Month() != time.January {
		t.Fatal("WithMonth mutated the wrapper")
	}

	original, ok := wrapped.Time()
	if !ok || !original.Equal(referenceTime) {
		t.Fatalf("Time() = %v, %v", original, ok)
	}
	if _, ok := wrapped.Original().(Date); !ok {
		t.Fatalf("Original() = %T", wrapped.Original())
	}
}

func TestArabicDateWrapUnwrapsNested(t *testing.T) {
	f := NewFormatter()
	inner := f.Wrap(NewDate(referenceTime), "en")
	outer := f.Wrap(inner, "ar")

	if _, ok := outer.Original().(*ArabicDate); ok {
		t.Fatal("Wrap should not nest wrappers")
	}
}

func TestArabicDateWithConversionCopies(t *testing.T) {
	f := NewFormatter()
	wrapped := f.Wrap(NewDate(referenceTime), "ar")
	disabled := wrapped.WithConversion(false)

	if !wrapped.Enabled() || disabled.Enabled() {
		t.Fatal("WithConversion must return a copy")
	}
}

func TestFormatterFactories(t *testing.T) {
	loc := time.FixedZone("AST", 3*3600)
	f := NewFormatter(WithClock(fixedClock), WithLocation(loc))

	now := f.Now("ar")
	if got := now.Format("Y-m-d H:i"); got != "٢٠٢٤-٠١-١٥ ١٧:٣٠" {
		t.Fatalf("Now() = %q", got)
	}

	tests := []struct {
		name     string
		date     *ArabicDate
		expected string
	}{
		{"today", f.Today("en"), "2024-01-15 00:00:00"},
		{"yesterday", f.Yesterday("en"), "2024-01-14 00:00:00"},
		{"tomorrow", f.Tomorrow("en"), "2024-01-16 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Format(""); got != tt.expected {
				t.Errorf("%s = %q; want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFormatterParse(t *testing.T) {
	f := NewFormatter()

	wrapped, err := f.Parse("2024-01-15 14:30:00", "ar")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := wrapped.ToArabicWithTime(); got != "١٥ يناير ٢٠٢٤ ١٤:٣٠:٠٠" {
		t.Fatalf("ToArabicWithTime() = %q", got)
	}

	if _, err := f.Parse("not a date", "ar"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestArabicDateZeroValue(t *testing.T) {
	var zero ArabicDate
	var nilDate *ArabicDate

	for name, wrapped := range map[string]*ArabicDate{"zero": &zero, "nil": nilDate} {
		if got := wrapped.Format("d F Y"); got != "" {
			t.Errorf("%s Format() = %q", name, got)
		}
		if got := wrapped.String(); got != "" {
			t.Errorf("%s String() = %q", name, got)
		}
		if got := wrapped.ToArabicWithTime(); got != "" {
			t.Errorf("%s ToArabicWithTime() = %q", name, got)
		}
	}

	noFormatter := &ArabicDate{date: NewDate(referenceTime), locale: "ar", enabled: true}
	if got := noFormatter.Format("d F Y"); got != "١٥ يناير ٢٠٢٤" {
		t.Fatalf("Format() without formatter = %q", got)
	}
	if got := noFormatter.ToArabicWithDay(); got != "الاثنين ١٥ يناير ٢٠٢٤" {
		t.Fatalf("ToArabicWithDay() without formatter = %q", got)
	}
}
