// Package logger, uygulamanın zap logger'ını ortama göre kurar.
//
// Development: renkli, okunabilir console çıktısı.
// Production: JSON çıktı (log toplama araçları için).
//
// Bileşenler kendi child logger'larını Named ile alır:
//
//	repoLog := log.Named("repository")
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Ortam adları — config.AppEnv bu değerlerden birini taşır.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// New, verilen ortam ve seviye için bir logger oluşturur.
// Geçersiz seviye "info"ya düşer; bu durum logger kurulduktan sonra
// warning olarak loglanır.
func New(env, level string) (*zap.Logger, error) {
	zapLevel := zapcore.InfoLevel
	levelErr := zapLevel.UnmarshalText([]byte(level))
	if levelErr != nil {
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == EnvProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	if levelErr != nil {
		log.Warn("invalid log level, using info",
			zap.String("level", level),
			zap.Error(levelErr),
		)
	}
	return log, nil
}

// Sync, buffer'daki log kayıtlarını yazar. Çıkıştan önce çağrılır.
// Terminale bağlı stderr'de Sync'in döndüğü hata yok sayılır.
func Sync(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}
