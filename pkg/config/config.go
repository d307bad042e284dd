package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// Downstream addresses used by the gateway. Treated as startup
	// configuration: the gateway refuses to boot without them.
	CartServiceURL     string
	ProductsServiceURL string

	JWTSecret string
	TokenTTL  time.Duration

	// Timeout for calls to downstream services.
	ClientTimeout time.Duration

	Storage string // "sqlite" or "memory"
	DBPath  string
}

func Load() Config {
	// A local .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	return Config{
		AppEnv:             getEnv("APP_ENV", "dev"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HTTPPort:           getEnvInt("HTTP_PORT", 0),
		CartServiceURL:     getEnv("CART_SERVICE_URL", ""),
		ProductsServiceURL: getEnv("PRODUCTS_SERVICE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", time.Hour),
		ClientTimeout:      getEnvDuration("HTTP_CLIENT_TIMEOUT", 5*time.Second),
		Storage:            getEnv("STORAGE", "sqlite"),
		DBPath:             getEnv("SQLITE_PATH", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
