package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL       string
	JWTSecret         string
	Port              string
	GoogleClientIDs   string
	FCMServiceAccount string
	UploadsDir        string
	Debug             bool
	LogFormat         string // json or console
}

func Load() *Config {
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", "hard75.db"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:              getEnv("PORT", "8080"),
		GoogleClientIDs:   getEnv("GOOGLE_CLIENT_IDS", ""),
		FCMServiceAccount: getEnv("FCM_SERVICE_ACCOUNT", ""),
		UploadsDir:        getEnv("UPLOADS_DIR", "uploads"),
		Debug:             getEnvBool("DEBUG", false),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fallback
		}
		return b
	}
	return fallback
}
