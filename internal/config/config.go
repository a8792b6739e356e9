package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RedisConfig returns host, port, password, db
func RedisConfig() (string, string, string, int) {
	host := GetEnv("R_HOST", "redis")
	port := GetEnv("R_PORT", "6379")
	password := GetEnv("R_PASS", "")
	db := GetEnvInt("R_DB", 0)
	return host, port, password, db
}

type JikanConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	UserAgent  string
}

func Jikan() JikanConfig {
	return JikanConfig{
		BaseURL:    strings.TrimRight(GetEnv("JIKAN_BASE_URL", "https://api.jikan.moe/v4"), "/"),
		Timeout:    GetEnvDuration("JIKAN_TIMEOUT", 30*time.Second),
		RatePerSec: GetEnvFloat("JIKAN_RATE_PER_SEC", 3),
		UserAgent:  GetEnv("USER_AGENT", "AnimeExplorer/1.0"),
	}
}

type ServerConfig struct {
	Port         string
	LogLevel     string
	SessionStore string
	SessionTTL   time.Duration
	CORSOrigins  []string
}

func Server() ServerConfig {
	return ServerConfig{
		Port:         GetEnv("PORT", "8080"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		SessionStore: strings.ToLower(GetEnv("SESSION_STORE", "memory")),
		SessionTTL:   GetEnvDuration("SESSION_TTL", 2*time.Hour),
		CORSOrigins:  GetEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

// GetEnv retrieves values from environment files based on the key it matches,
// returns a string (value) if not empty
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(GetEnv(key, ""), 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return f
}

// GetEnvDuration accepts Go duration strings such as "30s" or "2h".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(GetEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// GetEnvList splits a comma separated value, dropping blanks.
func GetEnvList(key string, defaultValue []string) []string {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
