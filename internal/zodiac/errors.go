package zodiac

import "errors"

// ErrInvalidDate is returned for malformed or calendar-impossible birth
// dates. It is a client-input error and surfaces to the caller directly.
var ErrInvalidDate = errors.New("zodiac: invalid birth date")

// IsInvalidDate reports whether err stems from a malformed birth date.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}
