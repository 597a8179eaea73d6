package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	// DatabaseDSN is a postgres DSN or a sqlite file path.
	DatabaseDSN string
	// StorageRoot is the directory for the mutable content provider.
	StorageRoot string
	// WORMRoot is the directory for the immutable content provider.
	WORMRoot string
	// RedisAddr enables the dashboard cache when set.
	RedisAddr string
	// AuthSecret signs session tokens.
	AuthSecret string
	// Retention is how long tombstones stay restorable.
	Retention time.Duration
	// CleanerSchedule is the cron spec of the recycle bin cleaner.
	CleanerSchedule string
}

func LoadConfig() *Config {
	cfg := &Config{
		DatabaseDSN:     getEnv("DATABASE_DSN", ".tmp/cabinet.db"),
		StorageRoot:     getEnv("STORAGE_ROOT", ".tmp/content"),
		WORMRoot:        getEnv("WORM_ROOT", ".tmp/worm"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		AuthSecret:      getEnv("AUTH_SECRET", "dev-secret"),
		CleanerSchedule: getEnv("CLEANER_SCHEDULE", "@hourly"),
	}

	days := 30
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	cfg.Retention = time.Duration(days) * 24 * time.Hour

	return cfg
}

// GetDb opens the configured database. A DSN with host= or a postgres://
// prefix selects postgres, anything else is treated as a sqlite path.
func GetDb(cfg *Config) *gorm.DB {
	var dialector gorm.Dialector
	if strings.Contains(cfg.DatabaseDSN, "host=") || strings.HasPrefix(cfg.DatabaseDSN, "postgres://") {
		dialector = postgres.Open(cfg.DatabaseDSN)
	} else {
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
