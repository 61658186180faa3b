// Package main, chanview'in giriş noktasıdır.
//
// Bu dosyanın görevi dependency wire-up:
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. i18n çevirilerini yükle
//  4. Database'i başlat
//  5. Repository ve service'leri oluştur
//  6. Kullanıcının son snapshot'ını restore et
//  7. Sidebar özetini logla, snapshot'ı tekrar kaydet
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/chanview/config"
	"github.com/akinalp/chanview/database"
	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/pkg/cache"
	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/pkg/logger"
	"github.com/akinalp/chanview/repository"
	"github.com/akinalp/chanview/services"
	"github.com/akinalp/chanview/store"
)

func main() {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		// Logger henüz yok
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// ─── 2. Logger ───
	log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync(log)
	zap.ReplaceGlobals(log)

	log = log.Named("main")
	log.Info("chanview starting", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		logger.Sync(log)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// ─── 3. i18n ───
	if err := i18n.Load(i18n.EmbeddedLocales()); err != nil {
		return err
	}

	// ─── 4. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations(), log)
	if err != nil {
		return err
	}
	defer db.Close()

	// ─── 5. Repository + Service ───
	snapshotRepo := repository.NewSQLiteSnapshotRepo(db.Conn)

	restored := cache.New[string, *store.Store](cfg.Snapshot.CacheTTL, time.Minute)
	defer restored.Close()

	snapshotService := services.NewSnapshotService(
		db.Conn, snapshotRepo, restored, cfg.Snapshot.Keep, cfg.App.DefaultLocale, log,
	)

	if cfg.Snapshot.UserID == "" {
		log.Warn("SNAPSHOT_USER_ID is empty, nothing to restore")
		return nil
	}

	// ─── 6. Restore ───
	st, err := snapshotService.Restore(ctx, cfg.Snapshot.UserID)
	if errors.Is(err, pkg.ErrNotFound) {
		log.Info("no snapshot yet, starting empty", zap.String("user_id", cfg.Snapshot.UserID))
		st = store.New(nil, log)
		st.Dispatch(store.SetCurrentUser{UserID: cfg.Snapshot.UserID})
	} else if err != nil {
		return err
	}

	// ─── 7. Sidebar özeti + kaydet ───
	sidebar := snapshotService.Sidebar(st.State())
	for _, c := range sidebar.Categories {
		log.Info("sidebar category",
			zap.String("category", c.DisplayName),
			zap.Int("channels", len(c.Entries)),
		)
	}
	log.Info("sidebar ready",
		zap.String("team_id", sidebar.TeamID),
		zap.String("redirect_channel", sidebar.RedirectChannel),
		zap.Int("mentions", sidebar.Unread.MentionCount),
		zap.Bool("has_unread", sidebar.Unread.HasUnread),
	)

	if _, err := snapshotService.Persist(ctx, st); err != nil {
		return err
	}
	return nil
}
