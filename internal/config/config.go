package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	StorageBackend string // memory | file | postgres
	DataDir        string
	PostgresDSN    string
}

// Load reads .env if present and assembles the runtime configuration
// from the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:           getenv("LISTEN_ADDR", "127.0.0.1:8080"),
		StorageBackend: getenv("STORAGE_BACKEND", "file"),
		DataDir:        getenv("DATA_DIR", "./data"),
		PostgresDSN:    getenv("POSTGRES_DSN", "postgres://localhost:5432/billing?sslmode=disable"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
