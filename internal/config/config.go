package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Environment    string
	AllowedOrigins []string
	ProgressAPIURL string
	RedisURL       string
	DatabaseURL    string
	Events         EventConfig
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGIN", "*")),
		ProgressAPIURL: getEnv("PROGRESS_API_URL", "http://localhost:8001/progress"),
		RedisURL:       getEnv("REDIS_URL", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Events: EventConfig{
			Enabled:       getEnv("EVENTS_ENABLED", "false") == "true",
			Publisher:     getEnv("EVENTS_PUBLISHER", "mock"),
			KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
			LearningTopic: getEnv("LEARNING_TOPIC", "learning_events"),
		},
	}, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
