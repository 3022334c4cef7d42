package corpus

import "errors"

var (
	// ErrLoad indicates the corpus source could not be read or parsed.
	ErrLoad = errors.New("failed to load corpus")
)

func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}
