package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	ServerPort string
	ServerHost string

	// Database
	DatabaseURL  string
	DatabaseType string // "postgres" or "sqlite"

	// Session
	SessionCookieName string
	SessionCookiePath string
	CookieSecure      bool

	// Operator scripts
	DataFile        string // migration input document
	DefaultPassword string // applied by the password-seeding script

	// App
	AppName string
}

func Load() *Config {
	return &Config{
		// Server
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		// Database
		DatabaseURL:  getEnv("DATABASE_URL", "gipis.db"),
		DatabaseType: getEnv("DATABASE_TYPE", "sqlite"),

		// Session
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "gipis_session"),
		SessionCookiePath: getEnv("SESSION_COOKIE_PATH", "/"),
		CookieSecure:      getEnvBool("COOKIE_SECURE", false),

		// Operator scripts
		DataFile:        getEnv("DATA_FILE", "database.json"),
		DefaultPassword: getEnv("DEFAULT_PASSWORD", "gipis2024"),

		// App
		AppName: getEnv("APP_NAME", "GIPIS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
