package vectorstore

import (
	"os"
	"strconv"
)

type Config struct {
	// Enabled switches similarity search on. Disabled leaves the service
	// on template/corpus fallbacks only.
	Enabled bool

	// TopK is the default number of matches returned per search.
	TopK int

	// Qdrant connection settings. Port is the gRPC port.
	Host   string
	Port   int
	APIKey string
	UseTLS bool

	// Collection name and embedding dimension. The default dimension
	// matches embed-english-v3.0 output.
	Collection string
	VectorSize int
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	enabled := true
	if v := os.Getenv("VECTOR_STORE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}

	topK := 3
	if v := os.Getenv("TOP_K_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topK = n
		}
	}

	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		host = "localhost"
	}

	port := 6334
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	useTLS := false
	if v := os.Getenv("QDRANT_USE_TLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useTLS = b
		}
	}

	collection := os.Getenv("QDRANT_COLLECTION")
	if collection == "" {
		collection = "astro_insights"
	}

	vectorSize := 1024
	if v := os.Getenv("QDRANT_VECTOR_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			vectorSize = n
		}
	}

	return Config{
		Enabled:    enabled,
		TopK:       topK,
		Host:       host,
		Port:       port,
		APIKey:     os.Getenv("QDRANT_API_KEY"),
		UseTLS:     useTLS,
		Collection: collection,
		VectorSize: vectorSize,
	}
}
