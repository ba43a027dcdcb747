package arabicdate

import "strings"

// lexiconEntry pairs a reference (English) token with its Arabic rendering.
type lexiconEntry struct {
	Latin  string
	Arabic string
}

// arabicDigits maps ASCII '0'..'9' by offset to Eastern Arabic digits.
var arabicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// arabicMonths is indexed by month number - 1.
var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// arabicWeekdays follows time.Weekday order, Sunday first.
var arabicWeekdays = [7]lexiconEntry{
	{Latin: "Sunday", Arabic: "الأحد"},
	{Latin: "Monday", Arabic: "الاثنين"},
	{Latin: "Tuesday", Arabic: "الثلاثاء"},
	{Latin: "Wednesday", Arabic: "الأربعاء"},
	{Latin: "Thursday", Arabic: "الخميس"},
	{Latin: "Friday", Arabic: "الجمعة"},
	{Latin: "Saturday", Arabic: "السبت"},
}

// arabicMeridiem is applied in this order during substitution.
var arabicMeridiem = [4]lexiconEntry{
	{Latin: "AM", Arabic: "ص"},
	{Latin: "PM", Arabic: "م"},
	{Latin: "am", Arabic: "ص"},
	{Latin: "pm", Arabic: "م"},
}

// ToArabicNumerals replaces every ASCII digit in text with its Eastern Arabic
// glyph. All other runes pass through unchanged.
func ToArabicNumerals(text string) string {
	return strings.Map(digitToArabic, text)
}

// FromArabicNumerals is the inverse of ToArabicNumerals.
func FromArabicNumerals(text string) string {
	return strings.Map(digitFromArabic, text)
}

func digitToArabic(r rune) rune {
	if r >= '0' && r <= '9' {
		return arabicDigits[r-'0']
	}
	return r
}

func digitFromArabic(r rune) rune {
	if r >= arabicDigits[0] && r <= arabicDigits[9] {
		return '0' + (r - arabicDigits[0])
	}
	return r
}

// MonthName returns the Arabic name for month 1..12, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > len(arabicMonths) {
		return ""
	}
	return arabicMonths[month-1]
}

// WeekdayName returns the Arabic name for an English weekday name. Unknown
// names are returned unchanged.
func WeekdayName(name string) string {
	arabic, _ := lookupWeekday(name)
	return arabic
}

// Meridiem returns the Arabic glyph for AM, PM, am or pm. Anything else is
// returned unchanged.
func Meridiem(marker string) string {
	for _, entry := range arabicMeridiem {
		if entry.Latin == marker {
			return entry.Arabic
		}
	}
	return marker
}

func lookupWeekday(name string) (string, bool) {
	for _, entry := range arabicWeekdays {
		if entry.Latin == name {
			return entry.Arabic, true
		}
	}
	return name, false
}
