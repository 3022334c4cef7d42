package tracer

import "os"

type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string

	// AppEnv tags spans with the deployment environment (development, production).
	AppEnv string

	// EnableExport turns on the OTLP HTTP exporter. Without it spans are
	// still created (and usable for in-process observability) but never leave
	// the process.
	EnableExport bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "astro-insight"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}
