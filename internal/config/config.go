// Package config reads the environment-level settings. A .env file in the
// working directory is loaded first when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultOwner stands in for a real user system; every task belongs to it.
const DefaultOwner = "user@example.com"

type Config struct {
	// DSN is the MySQL connection string for the task store.
	DSN string

	// HTTPAddr is the listen address for server mode.
	HTTPAddr string

	// WebhookURL is the notification sink. Empty disables notification.
	WebhookURL string

	// Owner scopes every read and write.
	Owner string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		DSN:        envOr("STORE_DSN", "root:123456@tcp(127.0.0.1:3306)/taskpad?parseTime=true"),
		HTTPAddr:   envOr("HTTP_ADDR", ":8080"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
		Owner:      envOr("TASK_OWNER", DefaultOwner),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
