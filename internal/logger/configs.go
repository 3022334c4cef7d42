package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Minimum level that gets emitted. Anything below is dropped.
	Level string

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "astro-insight"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
