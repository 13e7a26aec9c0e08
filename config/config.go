package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// MongoDB configuration
	MongoURI      string
	MongoDatabase string

	// Redis configuration (optional; the server runs without it)
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Cache configuration
	StatsCacheTTL time.Duration

	// Rate limiting
	CreateRateLimit  int64
	CreateRateWindow time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// MongoDB
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017/alumni-portal"),
		MongoDatabase: getEnv("MONGO_DATABASE", "alumni-portal"),

		// Redis
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// Cache
		StatsCacheTTL: getEnvAsDuration("STATS_CACHE_TTL", "1m"),

		// Rate limiting
		CreateRateLimit:  int64(getEnvAsInt("CREATE_RATE_LIMIT", 30)),
		CreateRateWindow: getEnvAsDuration("CREATE_RATE_WINDOW", "1m"),

		// HTTP timeouts
		ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", "10s"),
		WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", "10s"),
		IdleTimeout:  getEnvAsDuration("HTTP_IDLE_TIMEOUT", "60s"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	parsed, _ := time.ParseDuration(defaultValue)
	return parsed
}
