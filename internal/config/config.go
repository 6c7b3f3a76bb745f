package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "filmorate.db"
	defaultStorage     = StorageDB
	defaultLikePolicy  = LikePolicyIdempotent
	defaultLogLevel    = "info"
)

// Варианты хранилища, выбираются при старте.
const (
	StorageDB     = "db"
	StorageMemory = "memory"
)

// Политика повторного лайка (см. LIKE_POLICY).
const (
	// LikePolicyIdempotent: повторный лайк и снятие отсутствующего — no-op.
	LikePolicyIdempotent = "idempotent"
	// LikePolicyStrict: то же самое — ошибка валидации.
	LikePolicyStrict = "strict"
)

type Config struct {
	Addr        string
	DatabaseURL string
	Storage     string
	LikePolicy  string
	LogLevel    string
}

func Load() *Config {
	// .env нужен только для локальной разработки, его отсутствие не ошибка
	_ = godotenv.Load()

	return &Config{
		Addr:        getenv("ADDR", defaultAddr),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		Storage:     getenv("STORAGE", defaultStorage),
		LikePolicy:  getenv("LIKE_POLICY", defaultLikePolicy),
		LogLevel:    getenv("LOG_LEVEL", defaultLogLevel),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
