package zodiac

import (
	"fmt"
	"time"
)

// BirthDateLayout is the wire format for birth dates.
const BirthDateLayout = "2006-01-02"

// Days per month; February admits 29 so leap-day births resolve without
// knowing the year.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Resolve maps a month/day pair to its zodiac sign. The year is irrelevant
// for sun-sign resolution. It returns ErrInvalidDate for an out-of-range
// month or day and never fails for a valid date, since the ranges are
// exhaustive over the year.
func Resolve(month time.Month, day int) (Sign, error) {
	m := int(month)
	if m < 1 || m > 12 {
		return "", fmt.Errorf("%w: month %d out of range", ErrInvalidDate, m)
	}
	if day < 1 || day > daysInMonth[m] {
		return "", fmt.Errorf("%w: day %d out of range for month %d", ErrInvalidDate, day, m)
	}

	for _, r := range zodiacRanges {
		if r.startMonth < r.endMonth {
			if (m == r.startMonth && day >= r.startDay) ||
				(m == r.endMonth && day <= r.endDay) ||
				(r.startMonth < m && m < r.endMonth) {
				return r.sign, nil
			}
		} else {
			// Range crosses the year boundary (Capricorn): December tail
			// or January head.
			if (m == r.startMonth && day >= r.startDay) ||
				(m == r.endMonth && day <= r.endDay) {
				return r.sign, nil
			}
		}
	}

	// Unreachable for valid input; the ranges partition the year.
	return "", fmt.Errorf("%w: no sign for %d-%d", ErrInvalidDate, m, day)
}

// ResolveDate resolves the sign for a time.Time, which is valid by
// construction.
func ResolveDate(t time.Time) Sign {
	sign, _ := Resolve(t.Month(), t.Day())
	return sign
}

// ParseBirthDate parses a YYYY-MM-DD birth date strictly. Calendar-
// impossible dates (such as February 30th) fail here before resolution
// is attempted.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
