package zodiac

import "time"

// Panchang carries the Vedic birth-chart attributes this service reserves
// room for. All fields are placeholders until an ephemeris integration
// exists; consumers must treat the values as non-authoritative.
type Panchang struct {
	Tithi     string
	Nakshatra string
	Yoga      string
	Karana    string
	Ascendant Sign
	MoonSign  Sign
}

// Ascendant would compute the rising sign (Lagna) from the exact birth
// moment and location. Not implemented; always returns ("", false).
// A real implementation needs an ephemeris (Swiss Ephemeris or similar)
// to locate the eastern horizon at birth time.
func Ascendant(birthDate time.Time, birthTime string, latitude, longitude float64) (Sign, bool) {
	return "", false
}

// MoonSign would compute the sidereal moon sign (Rashi) from the birth
// moment and location. Not implemented; always returns ("", false).
func MoonSign(birthDate time.Time, birthTime string, latitude, longitude float64) (Sign, bool) {
	return "", false
}

// PanchangData assembles the placeholder Panchang for a birth moment.
// Every field is empty until the underlying calculations exist.
func PanchangData(birthDate time.Time, birthTime string, latitude, longitude float64) Panchang {
	ascendant, _ := Ascendant(birthDate, birthTime, latitude, longitude)
	moonSign, _ := MoonSign(birthDate, birthTime, latitude, longitude)

	return Panchang{
		Ascendant: ascendant,
		MoonSign:  moonSign,
	}
}
