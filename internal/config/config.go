package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/souvikjs01/unkey/internal/urlutil"
)

const (
	StoreSQL  = "sql"
	StoreGorm = "gorm"
)

type Config struct {
	Addr           string
	DataDir        string
	DBPath         string
	LogLevel       string
	JWTSecret      string
	Store          string
	EnableSwagger  bool
	APIRateLimit   float64
	OnboardingPath string
	SignInPath     string
	PurgeInterval  time.Duration
	PurgeRetention time.Duration
}

func Load() Config {
	dataDir := getEnv("DASH_DATA_DIR", "data")
	dbPath := os.Getenv("DASH_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "dashboard.db")
	}

	return Config{
		Addr:           getEnv("DASH_ADDR", ":8080"),
		DataDir:        filepath.Clean(dataDir),
		DBPath:         filepath.Clean(dbPath),
		LogLevel:       strings.ToLower(getEnv("DASH_LOG_LEVEL", "info")),
		JWTSecret:      os.Getenv("DASH_JWT_SECRET"),
		Store:          parseStore(os.Getenv("DASH_STORE")),
		EnableSwagger:  parseBool(os.Getenv("DASH_ENABLE_SWAGGER")),
		APIRateLimit:   parseFloat(os.Getenv("DASH_API_RATE_LIMIT"), 20),
		OnboardingPath: parseLocalPath(os.Getenv("DASH_ONBOARDING_PATH"), "/new"),
		SignInPath:     getEnv("DASH_SIGN_IN_PATH", "/auth/sign-in"),
		PurgeInterval:  parseDuration(os.Getenv("DASH_PURGE_INTERVAL"), time.Hour),
		PurgeRetention: parseDuration(os.Getenv("DASH_PURGE_RETENTION"), 30*24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseStore(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), StoreGorm) {
		return StoreGorm
	}
	return StoreSQL
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

// parseFloat returns fallback for empty, malformed or negative values.
func parseFloat(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// parseLocalPath keeps routes registered by this server on this origin.
func parseLocalPath(raw, fallback string) string {
	if p, ok := urlutil.LocalPath(raw); ok {
		return p
	}
	return fallback
}
