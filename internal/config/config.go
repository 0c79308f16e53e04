package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port  string
	Env   string
	Debug bool

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// HTTP
	CORSAllowedOrigin string
	MetricsEnabled    bool
}

// Load reads the process configuration once at startup. A missing
// GEMINI_API_KEY panics, which stops the service before it listens.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "5000"),
		Env:               getEnvOrDefault("ENV", "development"),
		Debug:             getEnvAsBoolOrDefault("DEBUG", getEnvAsBoolOrDefault("FLASK_DEBUG", false)),
		GeminiAPIKey:      mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		CORSAllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		MetricsEnabled:    getEnvAsBoolOrDefault("METRICS_ENABLED", true),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(strings.ToLower(val))
	if err != nil {
		return defaultVal
	}
	return b
}
