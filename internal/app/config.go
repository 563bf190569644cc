package app

import (
	"github.com/numberloom/numberloom-backend/internal/platform/envutil"
)

type Config struct {
	Port string

	// MaxRetries bounds how many times a repositioning retries after losing
	// an optimistic-concurrency race.
	MaxRetries int

	// RedisAddr is optional; empty disables the shared queue cache.
	RedisAddr string
}

func LoadConfig() Config {
	return Config{
		Port:       envutil.String("PORT", "8080"),
		MaxRetries: envutil.Int("SCHEDULER_MAX_RETRIES", 3),
		RedisAddr:  envutil.String("REDIS_ADDR", ""),
	}
}
