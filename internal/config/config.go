package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds server configuration read from the environment.
type Config struct {
	// Addr is the listen address.
	Addr string

	// MongoURI selects the MongoDB backend when non-empty; otherwise the
	// SQLite backend at SQLitePath is used.
	MongoURI string

	// MongoDatabase is the MongoDB database name.
	MongoDatabase string

	// SQLitePath is the SQLite database file path.
	SQLitePath string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	// A missing .env file is fine; the environment alone may be complete.
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	return Config{
		Addr:          addr,
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getenvDefault("MONGO_DB", "todoapp"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "todos.db"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
