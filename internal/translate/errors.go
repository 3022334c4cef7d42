package translate

import "errors"

var (
	// ErrUnsupportedLanguage indicates a target language outside the
	// supported set. Raised before any external call.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

func IsUnsupportedLanguage(err error) bool {
	return errors.Is(err, ErrUnsupportedLanguage)
}
