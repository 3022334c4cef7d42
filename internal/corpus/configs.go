package corpus

import "os"

type Config struct {
	// Path points at an override corpus file. Empty means the embedded
	// default corpus ships with the binary.
	Path string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	return Config{
		Path: os.Getenv("CORPUS_PATH"),
	}
}
