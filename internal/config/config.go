package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Addr is the listen address for the HTTP and WebSocket server
	Addr string

	// RedisAddr, RedisPassword and RedisDB configure the session store
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionTTL is how long an untouched session survives in the store
	SessionTTL time.Duration
}

func Load() Config {
	return Config{
		Addr:          getenv("POINTING_ADDR", ":8080"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),
		SessionTTL:    time.Duration(getenvInt("POINTING_SESSION_TTL_SECONDS", 86400)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
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
