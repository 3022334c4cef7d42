package metrics

import "os"

type Config struct {
	// Address the metrics HTTP server listens on, e.g. ":9090".
	Address string

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers the Go, process and build info
	// collectors alongside the application metrics.
	EnableDefaultCollectors bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = ":9090"
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "astro-insight"
	}

	return Config{
		Address:                 address,
		ServiceName:             service,
		EnableDefaultCollectors: os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS") != "false",
	}
}
