package vectorstore

import "errors"

var (
	// ErrUnavailable indicates the store exists but cannot serve a search
	// right now (embedding or Qdrant failure). Callers treat it as a miss.
	ErrUnavailable = errors.New("vector store unavailable")
)

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
