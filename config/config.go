// file: config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerHost string
	ServerPort string

	// 上游挑战后端
	BackendBaseURL     string
	BackendTimeoutSecs int

	TokenCookieName string

	APIRateLimitRequests   int
	APIRateLimitWindowMins int
	APICORSOrigins         []string

	DebugMode bool
}

func Load() (*Config, error) {
	godotenv.Load("config.env")

	cfg := &Config{
		ServerHost: getEnvString("SERVER_HOST", ""),
		ServerPort: getEnvString("SERVER_PORT", "3000"),

		BackendBaseURL:     getEnvString("BACKEND_BASE_URL", "http://localhost:5000"),
		BackendTimeoutSecs: getEnvInt("BACKEND_TIMEOUT_SECONDS", 15),

		TokenCookieName: getEnvString("TOKEN_COOKIE_NAME", "ufc_token"),

		APIRateLimitRequests:   getEnvInt("API_RATE_LIMIT_REQUESTS", 60),
		APIRateLimitWindowMins: getEnvInt("API_RATE_LIMIT_WINDOW_MINUTES", 1),
		APICORSOrigins:         getEnvStringSlice("API_CORS_ORIGINS", []string{"*"}),

		DebugMode: getEnvBool("DEBUG_MODE", false),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
