package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	GinMode string

	JWTSecret string
	TokenTTL  time.Duration

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration

	SerperAPIKey string

	LogFile string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "skillsprint"),
		DBPassword: getEnv("DB_PASSWORD", "skillsprint"),
		DBName:     getEnv("DB_NAME", "skillsprint"),

		GinMode: getEnv("GIN_MODE", "debug"),

		JWTSecret: getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:  getDuration("TOKEN_TTL_HOURS", 24) * time.Hour,

		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMModel:   getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout: getDuration("LLM_TIMEOUT_SECONDS", 60) * time.Second,

		SerperAPIKey: getEnv("SERPER_API_KEY", ""),

		LogFile: getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue int64) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultValue)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return time.Duration(defaultValue)
	}
	return time.Duration(n)
}
