// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar; her yerde ayrı ayrı
// os.Getenv() çağırmak yerine tek bir Config nesnesi taşınır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/pkg/logger"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Snapshot SnapshotConfig
}

// AppConfig, ortam ve log ayarları.
type AppConfig struct {
	Env           string // development | production
	LogLevel      string // debug, info, warn, error
	DefaultLocale string // Kullanıcının locale'i bilinmiyorsa
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/chanview.db)
}

// SnapshotConfig, store snapshot'larının saklanma ayarları.
type SnapshotConfig struct {
	UserID   string        // Açılışta restore edilecek kullanıcı
	CacheTTL time.Duration // Restore edilen store'ların cache süresi
	Keep     int           // Kullanıcı başına saklanan snapshot sayısı
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler — dosya yoksa sessizce devam eder.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlSeconds, err := strconv.Atoi(getEnv("SNAPSHOT_CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_CACHE_TTL_SECONDS: %w", err)
	}
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("invalid SNAPSHOT_CACHE_TTL_SECONDS: must not be negative")
	}

	keep, err := strconv.Atoi(getEnv("SNAPSHOT_KEEP", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_KEEP: %w", err)
	}
	if keep < 1 {
		return nil, fmt.Errorf("invalid SNAPSHOT_KEEP: must be at least 1")
	}

	env := getEnv("APP_ENV", logger.EnvDevelopment)
	if env != logger.EnvDevelopment && env != logger.EnvProduction {
		return nil, fmt.Errorf("invalid APP_ENV %q: want %s or %s", env, logger.EnvDevelopment, logger.EnvProduction)
	}

	cfg := &Config{
		App: AppConfig{
			Env:           env,
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			DefaultLocale: getEnv("DEFAULT_LOCALE", i18n.DefaultLanguage),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/chanview.db"),
		},
		Snapshot: SnapshotConfig{
			UserID:   getEnv("SNAPSHOT_USER_ID", ""),
			CacheTTL: time.Duration(ttlSeconds) * time.Second,
			Keep:     keep,
		},
	}

	return cfg, nil
}

// IsProduction, production ortamında mı çalışılıyor?
func (c *AppConfig) IsProduction() bool {
	return c.Env == logger.EnvProduction
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
