package zodiac

import "strings"

// Sign is one of the twelve tropical zodiac signs.
type Sign string

const (
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
)

// signRange is an inclusive month/day range. Capricorn is the one range
// that wraps across the year boundary (Dec 22 through Jan 19).
type signRange struct {
	sign       Sign
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

// Inclusive date ranges for the western sun signs. Ordered, contiguous,
// covering the full year.
var zodiacRanges = []signRange{
	{Capricorn, 12, 22, 1, 19},
	{Aquarius, 1, 20, 2, 18},
	{Pisces, 2, 19, 3, 20},
	{Aries, 3, 21, 4, 19},
	{Taurus, 4, 20, 5, 20},
	{Gemini, 5, 21, 6, 20},
	{Cancer, 6, 21, 7, 22},
	{Leo, 7, 23, 8, 22},
	{Virgo, 8, 23, 9, 22},
	{Libra, 9, 23, 10, 22},
	{Scorpio, 10, 23, 11, 21},
	{Sagittarius, 11, 22, 12, 21},
}

// Signs returns all twelve signs in range-table order, starting with
// Capricorn.
func Signs() []Sign {
	out := make([]Sign, len(zodiacRanges))
	for i, r := range zodiacRanges {
		out[i] = r.sign
	}
	return out
}

// Canonical maps a sign name in any casing to its canonical Sign value.
// Reports false for names that are not one of the twelve signs.
func Canonical(name string) (Sign, bool) {
	for _, r := range zodiacRanges {
		if strings.EqualFold(name, string(r.sign)) {
			return r.sign, true
		}
	}
	return "", false
}
