package cohere

import "errors"

var (
	// ErrNotConfigured is returned when a call is attempted without an API
	// key. Callers are expected to degrade rather than fail the request.
	ErrNotConfigured = errors.New("cohere: provider not configured")

	// ErrRequestFailed wraps transport failures and non-2xx responses.
	ErrRequestFailed = errors.New("cohere: request failed")
)

// IsNotConfigured reports whether err means the provider has no API key.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
