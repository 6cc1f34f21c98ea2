package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	Port           string
	MongoURI       string
	AllowedOrigins []string
	UploadDir      string
	Redis          RedisConfig
	RateLimitRPM   int
	RateLimitBurst int
	RateLimitOn    bool
}

// Load reads configuration from the environment, with .env as a
// fallback. A missing MONGO_URI is fatal; everything else has a
// development default.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logrus.Fatal("MONGO_URI environment variable is not set")
	}

	return &Config{
		Port:           envOr("PORT", "8080"),
		MongoURI:       mongoURI,
		AllowedOrigins: splitOrigins(envOr("ALLOWED_ORIGINS", "*")),
		UploadDir:      envOr("UPLOAD_DIR", "uploads"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		RateLimitRPM:   envInt("RATE_LIMIT_RPM", 120),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 30),
		RateLimitOn:    envBool("RATE_LIMIT_ENABLED", true),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("invalid value for %s, using default %t", key, fallback)
		return fallback
	}
	return parsed
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
