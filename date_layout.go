package arabicdate

import (
	"strconv"
	"strings"
	"time"
)

// Format renders d with PHP date() tokens. Unknown characters are copied as
// is and a backslash escapes the character that follows it.
func (d Date) Format(spec string) string {
	var b strings.Builder
	b.Grow(len(spec) * 2)

	t := d.t
	escaped := false
	for _, r := range spec {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		writeToken(&b, t, r)
	}

	return b.String()
}

func writeToken(b *strings.Builder, t time.Time, token rune) {
	switch token {
	// day
	case 'd':
		b.WriteString(pad(t.Day(), 2))
	case 'D':
		b.WriteString(t.Weekday().String()[:3])
	case 'j':
		b.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		b.WriteString(t.Weekday().String())
	case 'N':
		b.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'S':
		b.WriteString(englishSuffix(t.Day()))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(t.YearDay() - 1))

	// week
	case 'W':
		_, week := t.ISOWeek()
		b.WriteString(pad(week, 2))

	// month
	case 'F':
		b.WriteString(t.Month().String())
	case 'm':
		b.WriteString(pad(int(t.Month()), 2))
	case 'M':
		b.WriteString(t.Month().String()[:3])
	case 'n':
		b.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		b.WriteString(strconv.Itoa(daysIn(t.Month(), t.Year())))

	// year
	case 'L':
		if daysIn(time.February, t.Year()) == 29 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'o':
		year, _ := t.ISOWeek()
		b.WriteString(strconv.Itoa(year))
	case 'Y':
		b.WriteString(formatYear(t.Year()))
	case 'y':
		b.WriteString(pad(t.Year()%100, 2))

	// time
	case 'a':
		if t.Hour() < 12 {
			b.WriteString("am")
		} else {
			b.WriteString("pm")
		}
	case 'A':
		if t.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'B':
		b.WriteString(pad(swatchBeat(t), 3))
	case 'g':
		b.WriteString(strconv.Itoa(hour12(t.Hour())))
	case 'G':
		b.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		b.WriteString(pad(hour12(t.Hour()), 2))
	case 'H':
		b.WriteString(pad(t.Hour(), 2))
	case 'i':
		b.WriteString(pad(t.Minute(), 2))
	case 's':
		b.WriteString(pad(t.Second(), 2))
	case 'u':
		b.WriteString(pad(t.Nanosecond()/int(time.Microsecond), 6))
	case 'v':
		b.WriteString(pad(t.Nanosecond()/int(time.Millisecond), 3))

	// timezone
	case 'e':
		b.WriteString(t.Location().String())
	case 'I':
		if t.IsDST() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'O':
		b.WriteString(t.Format("-0700"))
	case 'P':
		b.WriteString(t.Format("-07:00"))
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			b.WriteByte('Z')
		} else {
			b.WriteString(t.Format("-07:00"))
		}
	case 'T':
		b.WriteString(t.Format("MST"))
	case 'Z':
		_, offset := t.Zone()
		b.WriteString(strconv.Itoa(offset))

	// full date/time
	case 'c':
		b.WriteString(t.Format("2006-01-02T15:04:05-07:00"))
	case 'r':
		b.WriteString(t.Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	case 'U':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))

	default:
		b.WriteRune(token)
	}
}

func pad(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func formatYear(year int) string {
	if year < 0 {
		return "-" + pad(-year, 4)
	}
	return pad(year, 4)
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func englishSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// swatchBeat returns Swatch Internet Time, measured from UTC+1 midnight.
func swatchBeat(t time.Time) int {
	u := t.UTC()
	seconds := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400
	return seconds * 10 / 864
}
