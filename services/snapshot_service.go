package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akinalp/chanview/database"
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/pkg/cache"
	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/repository"
	"github.com/akinalp/chanview/selectors"
	"github.com/akinalp/chanview/store"
)

// SnapshotService, store snapshot'larının kalıcı saklanması ve sidebar
// özetinin üretilmesi için iş mantığı interface'i.
type SnapshotService interface {
	// Persist, store'un mevcut snapshot'ını mevcut kullanıcı adına kaydeder
	// ve kullanıcının eski snapshot'larını budar.
	Persist(ctx context.Context, st *store.Store) (*models.Snapshot, error)

	// Restore, kullanıcının en son snapshot'ından bir Store kurar.
	// Hiç snapshot yoksa pkg.ErrNotFound döner.
	Restore(ctx context.Context, userID string) (*store.Store, error)

	// Sidebar, snapshot'tan mevcut takımın sidebar özetini üretir.
	Sidebar(s *store.State) *Sidebar
}

// SidebarEntry, sidebar'daki tek bir kanal satırı.
type SidebarEntry struct {
	Channel *models.Channel
	Unread  selectors.UnreadMeta
	Muted   bool
}

// SidebarCategory, başlığı ve kanallarıyla bir sidebar bölümü.
type SidebarCategory struct {
	ID          string
	DisplayName string
	Entries     []SidebarEntry
}

// Sidebar, mevcut takım için view'a hazır özet.
type Sidebar struct {
	TeamID          string
	RedirectChannel string
	Unread          selectors.UnreadStatus
	Categories      []SidebarCategory
}

type snapshotService struct {
	db           *sql.DB // Save + Prune tek transaction'da
	snapshotRepo repository.SnapshotRepository
	restored     *cache.TTLCache[string, *store.Store]

	keep          int
	defaultLocale string
	now           func() time.Time
	logger        *zap.Logger

	// Kategori ID'si → kendi cache'ine sahip selector
	categoryMu        sync.Mutex
	categorySelectors map[string]func(*store.State, *models.ChannelCategory) []*models.Channel
}

// NewSnapshotService, servis oluşturur.
//
// db: Persist'te WithTx ile atomik yazma için doğrudan *sql.DB gerekir.
// restored: Restore sonuçlarının kullanıcı başına cache'i.
func NewSnapshotService(
	db *sql.DB,
	snapshotRepo repository.SnapshotRepository,
	restored *cache.TTLCache[string, *store.Store],
	keep int,
	defaultLocale string,
	logger *zap.Logger,
) SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &snapshotService{
		db:                db,
		snapshotRepo:      snapshotRepo,
		restored:          restored,
		keep:              keep,
		defaultLocale:     defaultLocale,
		now:               time.Now,
		logger:            logger.Named("snapshot"),
		categorySelectors: make(map[string]func(*store.State, *models.ChannelCategory) []*models.Channel),
	}
}

func (s *snapshotService) Persist(ctx context.Context, st *store.Store) (*models.Snapshot, error) {
	state := st.State()
	userID := state.UsersSection().CurrentUserID
	if userID == "" {
		return nil, fmt.Errorf("%w: store has no current user", pkg.ErrBadRequest)
	}

	snapshot := &models.Snapshot{
		ID:           uuid.NewString(),
		UserID:       userID,
		StoreVersion: st.Version(),
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}

	var pruned int64
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteSnapshotRepo(tx)

		if err := txRepo.Save(ctx, snapshot, state); err != nil {
			return err
		}

		var err error
		pruned, err = txRepo.Prune(ctx, userID, s.keep)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	s.restored.Set(userID, st)

	s.logger.Info("snapshot persisted",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("user_id", userID),
		zap.Int64("store_version", snapshot.StoreVersion),
		zap.Int64("pruned", pruned),
	)
	return snapshot, nil
}

func (s *snapshotService) Restore(ctx context.Context, userID string) (*store.Store, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", pkg.ErrBadRequest)
	}

	if st, ok := s.restored.Get(userID); ok {
		s.logger.Debug("snapshot served from cache", zap.String("user_id", userID))
		return st, nil
	}

	snapshot, state, err := s.snapshotRepo.LoadLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to restore snapshot: %w", err)
	}

	// Bozuk kanal kayıtları store'da kalır ama loglanır
	for id, ch := range state.ChannelsSection().Channels {
		if ch == nil {
			s.logger.Warn("empty channel entry in snapshot",
				zap.String("snapshot_id", snapshot.ID),
				zap.String("channel_id", id),
			)
			continue
		}
		if err := ch.Validate(); err != nil {
			s.logger.Warn("invalid channel in snapshot",
				zap.String("snapshot_id", snapshot.ID),
				zap.Error(err),
			)
		}
	}

	st := store.New(state, s.logger)
	s.restored.Set(userID, st)

	s.logger.Info("snapshot restored",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("user_id", userID),
		zap.Time("created_at", snapshot.CreatedAt),
	)
	return st, nil
}

func (s *snapshotService) Sidebar(state *store.State) *Sidebar {
	teamID := state.TeamsSection().CurrentTeamID
	loc := i18n.NewLocalizer(s.locale(state))

	sidebar := &Sidebar{
		TeamID:          teamID,
		RedirectChannel: selectors.GetRedirectChannelNameForCurrentTeam(state),
		Unread:          selectors.GetUnreadStatus(state),
	}

	categories := selectors.GetCategoriesForTeam(state, teamID)
	if len(categories) == 0 {
		sidebar.Categories = defaultCategories(state, loc)
		return sidebar
	}

	for _, c := range categories {
		channels := s.categorySelector(c.ID)(state, c)
		sidebar.Categories = append(sidebar.Categories, SidebarCategory{
			ID:          c.ID,
			DisplayName: categoryName(c, loc),
			Entries:     entries(state, channels),
		})
	}
	return sidebar
}

func (s *snapshotService) locale(state *store.State) string {
	if u := selectors.GetCurrentUser(state); u != nil && u.Locale != "" {
		return u.Locale
	}
	return s.defaultLocale
}

func (s *snapshotService) categorySelector(id string) func(*store.State, *models.ChannelCategory) []*models.Channel {
	s.categoryMu.Lock()
	defer s.categoryMu.Unlock()

	sel, ok := s.categorySelectors[id]
	if !ok {
		sel = selectors.MakeGetChannelsForCategory()
		s.categorySelectors[id] = sel
	}
	return sel
}

// defaultCategories, takım için kategori yüklenmemişse sidebar'ı
// favoriler, kanallar ve DM'ler olarak böler. Boş bölümler atlanır.
func defaultCategories(state *store.State, loc *i18n.Localizer) []SidebarCategory {
	var favorites, channels, direct []*models.Channel
	for _, ch := range selectors.GetMyChannels(state) {
		switch {
		case selectors.IsFavoriteChannel(state, ch.ID):
			favorites = append(favorites, ch)
		case ch.IsDirectOrGroup():
			direct = append(direct, ch)
		default:
			channels = append(channels, ch)
		}
	}

	var out []SidebarCategory
	for _, c := range []struct {
		typ      models.CategoryType
		channels []*models.Channel
	}{
		{models.CategoryTypeFavorites, favorites},
		{models.CategoryTypeChannels, channels},
		{models.CategoryTypeDirectMessages, direct},
	} {
		if len(c.channels) == 0 {
			continue
		}
		out = append(out, SidebarCategory{
			ID:          string(c.typ),
			DisplayName: categoryName(&models.ChannelCategory{Type: c.typ}, loc),
			Entries:     entries(state, c.channels),
		})
	}
	return out
}

// categoryName, custom kategoriler için kendi adını, diğerleri için
// yerelleştirilmiş adı döner.
func categoryName(c *models.ChannelCategory, loc *i18n.Localizer) string {
	switch c.Type {
	case models.CategoryTypeFavorites:
		return loc.T("sidebar.favorites")
	case models.CategoryTypeChannels:
		return loc.T("sidebar.channels")
	case models.CategoryTypeDirectMessages:
		return loc.T("sidebar.directMessages")
	}
	return c.DisplayName
}

func entries(state *store.State, channels []*models.Channel) []SidebarEntry {
	members := state.ChannelsSection().MyMembers

	out := make([]SidebarEntry, 0, len(channels))
	for _, ch := range channels {
		m := members[ch.ID]
		out = append(out, SidebarEntry{
			Channel: ch,
			Unread:  selectors.GetChannelUnreadMeta(state, ch.ID),
			Muted:   m != nil && m.NotifyProps.MarkUnread == models.MarkUnreadMention,
		})
	}
	return out
}
