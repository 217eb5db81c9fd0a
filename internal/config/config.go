package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":5050"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir  string // directory holding the JSON documents
	SeedFile string // optional YAML bootstrap file (empty = no seeding)

	// AdminHeader names the request header carrying the caller's email.
	// Its value is trusted as supplied; put real authentication in front.
	AdminHeader string

	CORSOrigins  []string // origins allowed to call /api
	AllowedHosts []string // optional, restrict access to specific Host headers
	TrustProxy   bool     // true => resolve client IP from proxy headers

	// Rate limiting for mutating routes
	RateBurst         int
	RateRefillPerMin  int
	RateLimitDisabled bool
}

func Load() *Config {
	return &Config{
		// Server settings
		ListenPort:      getenv("RF_LISTEN_PORT", ":5050"),
		ShutdownTimeout: mustDuration("RF_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("RF_LOG_LEVEL", "info"),
		PrettyLog: mustBool("RF_PRETTY_LOG", true),

		// Storage
		DataDir:  getenv("RF_DATA_DIR", "data"),
		SeedFile: getenv("RF_SEED_FILE", ""),

		// Authorization
		AdminHeader: getenv("RF_ADMIN_HEADER", "X-User-Email"),

		// Access restrictions
		CORSOrigins:  splitAndTrim(getenv("RF_CORS_ORIGINS", "http://localhost:8000,http://127.0.0.1:8000")),
		AllowedHosts: splitAndTrim(getenv("RF_ALLOWED_HOSTS", "")),
		TrustProxy:   mustBool("RF_TRUST_PROXY", false),

		// Rate limiting
		RateBurst:         getenvInt("RF_RATE_BURST", 20),
		RateRefillPerMin:  getenvInt("RF_RATE_REFILL_PER_MIN", 60),
		RateLimitDisabled: mustBool("RF_RATE_LIMIT_DISABLED", false),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
