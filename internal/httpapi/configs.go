package httpapi

import "os"

type Config struct {
	// Address is the listen address of the public API server.
	Address string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	address := os.Getenv("HTTP_ADDRESS")
	if address == "" {
		address = ":8080"
	}

	return Config{Address: address}
}
