package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./mdip.db)
	SessionSecret string        // Required in prod: HMAC secret for session tokens
	SessionTTL    time.Duration // Optional: session token lifetime (default: 12h)

	AssistantEndpoint string // Optional: base URL of the generative API (default: Google AI endpoint)
	AssistantAPIKey   string // Optional: API key for the generative API; assistant disabled when empty
	AssistantModel    string // Optional: model name (default: gemini-2.0-flash)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:  getEnvOrDefault("MDIP_DATABASE_FILE", "mdip.db"),
		SessionSecret: getEnvOrDefault("MDIP_SESSION_SECRET", "dev-only-secret"),
		SessionTTL:    getEnvDurationOrDefault("MDIP_SESSION_TTL", 12*time.Hour),

		AssistantEndpoint: getEnvOrDefault(
			"MDIP_ASSISTANT_ENDPOINT",
			"https://generativelanguage.googleapis.com",
		),
		AssistantAPIKey: os.Getenv("MDIP_ASSISTANT_API_KEY"),
		AssistantModel:  getEnvOrDefault("MDIP_ASSISTANT_MODEL", "gemini-2.0-flash"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
