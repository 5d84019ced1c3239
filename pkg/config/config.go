package config

import (
	"os"
	"strconv"
)

// Config is built once in main and injected into the pieces that need
// it. No package keeps global settings state.
type Config struct {
	AppName    string
	AppVersion string
	Port       string

	DatabaseDriver string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	JWT JWTConfig

	CacheBackend string
	RedisAddr    string

	Environment string
}

type JWTConfig struct {
	Secret          string
	Algorithm       string
	LifetimeMinutes int
}

func Load() *Config {
	return &Config{
		AppName:    getEnv("APP_NAME", "todoapi"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		Port:       getEnv("PORT", "8080"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite3"),
		DatabasePath:   getEnv("DATABASE_PATH", "database.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),

		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET_KEY", "fallback-secret-key"),
			Algorithm:       getEnv("JWT_ALGORITHM", "HS256"),
			LifetimeMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 30),
		},

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),

		Environment: getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)

	if err != nil {
		return fallback
	}

	return parsed
}
