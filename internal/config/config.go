package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	BaseDomain         string // domain prefixed to short codes in displayed URLs
	StorageDir         string // directory for the file-backed blob store
	RedisURL           string // optional; file store is used when empty or unreachable
	SimulatedLatencyMS int    // artificial delay before a shorten request completes
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		BaseDomain:         getEnv("BASE_DOMAIN", "https://short.ly"),
		StorageDir:         getEnv("STORAGE_DIR", "data"),
		RedisURL:           getEnv("REDIS_URL", ""),
		SimulatedLatencyMS: getEnvInt("SIMULATED_LATENCY_MS", 500),
	}
}

func getEnv(key, defaultValue string) string {
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
