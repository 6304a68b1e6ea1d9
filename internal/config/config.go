package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	DBDSN    string
	LogLevel string
	LogFile  string

	CORSOrigins     []string
	RateLimitPerMin int
	MaxUploadBytes  int

	// Analytics
	LowStockThreshold int
	ScanLimit         int
}

// Load reads the process environment. Call godotenv.Load first if a .env file should apply.
func Load() Config {
	return Config{
		Port:     getEnv("PORT", "8000"),
		DBDSN:    getEnv("DB_DSN", "warehouse.db"), // sqlite file in project root
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:3001",
		}),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MIN", 120),
		MaxUploadBytes:    getEnvInt("MAX_UPLOAD_BYTES", 5<<20),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
		ScanLimit:         getEnvInt("ANALYTICS_SCAN_LIMIT", 1000),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
