package translate

import (
	"os"
	"strconv"
)

type Config struct {
	// Enabled switches outbound translation calls on. Disabled keeps the
	// language validation but always returns the original text.
	Enabled bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	enabled := true
	if v := os.Getenv("TRANSLATION_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}

	return Config{
		Enabled: enabled,
	}
}
