package services

import (
	"context"
	"maps"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/akinalp/chanview/database"
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/pkg/cache"
	"github.com/akinalp/chanview/pkg/i18n"
	"github.com/akinalp/chanview/repository"
	"github.com/akinalp/chanview/selectors"
	"github.com/akinalp/chanview/store"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(i18n.EmbeddedLocales()); err != nil {
		panic(err)
	}
	m.Run()
}

const dm = "u1__u2"

func newTestService(t *testing.T, db *database.DB, ttl time.Duration) SnapshotService {
	t.Helper()

	restored := cache.New[string, *store.Store](ttl, 0)
	t.Cleanup(restored.Close)

	return NewSnapshotService(db.Conn, repository.NewSQLiteSnapshotRepo(db.Conn), restored, 2, "en", zaptest.NewLogger(t))
}

func openDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "service.db"), database.Migrations(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sidebarStore(locale string) *store.Store {
	st := store.New(nil, nil)
	for _, a := range []store.Action{
		store.SetCurrentUser{UserID: "u1"},
		store.ReceivedProfiles{Profiles: []*models.User{
			{ID: "u1", Username: "me", Locale: locale},
			{ID: "u2", Username: "bob"},
		}},
		store.ReceivedTeams{Teams: []*models.Team{{ID: "t1", Name: "one", DisplayName: "One"}}},
		store.ReceivedMyTeamMembers{Members: []*models.TeamMembership{{TeamID: "t1", UserID: "u1"}}},
		store.SelectTeam{TeamID: "t1"},
		store.ReceivedChannels{Channels: []*models.Channel{
			{ID: "c1", TeamID: "t1", Type: models.ChannelTypeOpen, Name: models.DefaultChannelName, DisplayName: "Town Square"},
			{ID: "c2", TeamID: "t1", Type: models.ChannelTypeOpen, Name: "off-topic", DisplayName: "Off-Topic"},
			{ID: dm, Type: models.ChannelTypeDirect, Name: dm},
		}},
		store.ReceivedMyChannelMembers{Members: []*models.ChannelMembership{
			{ChannelID: "c1", UserID: "u1", MsgCount: 3, NotifyProps: models.ChannelNotifyProps{MarkUnread: models.MarkUnreadMention}},
			{ChannelID: "c2", UserID: "u1", MsgCount: 3},
			{ChannelID: dm, UserID: "u1", MentionCount: 1},
		}},
		store.ReceivedMessageCounts{Totals: map[string]int64{"c1": 3, "c2": 5, dm: 1}},
		store.ReceivedPreferences{Preferences: []*models.Preference{
			{UserID: "u1", Category: models.PreferenceCategoryFavoriteChannel, Name: "c2", Value: "true"},
		}},
	} {
		st.Dispatch(a)
	}
	return st
}

func TestSnapshotService_PersistAndRestore(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	st := sidebarStore("en")

	svc := newTestService(t, db, time.Minute)
	snap, err := svc.Persist(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, st.Version(), snap.StoreVersion)
	assert.NotEmpty(t, snap.ID)

	// Aynı servis: cache'ten aynı store
	cached, err := svc.Restore(ctx, "u1")
	require.NoError(t, err)
	assert.Same(t, st, cached)

	// Yeni servis (boş cache): veritabanından
	fresh := newTestService(t, db, time.Minute)
	restored, err := fresh.Restore(ctx, "u1")
	require.NoError(t, err)
	assert.NotSame(t, st, restored)
	assert.Equal(t, selectors.GetUnreadStatus(st.State()), selectors.GetUnreadStatus(restored.State()))
	assert.Equal(t, "bob", selectors.MakeGetChannel()(restored.State(), dm).DisplayName)
}

func TestSnapshotService_PersistPrunes(t *testing.T) {
	db := openDB(t)
	svc := newTestService(t, db, 0)
	st := sidebarStore("en")

	for range 4 {
		_, err := svc.Persist(context.Background(), st)
		require.NoError(t, err)
	}

	var count int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM snapshots WHERE user_id = 'u1'").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSnapshotService_Errors(t *testing.T) {
	svc := newTestService(t, openDB(t), 0)
	ctx := context.Background()

	_, err := svc.Restore(ctx, "nobody")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = svc.Restore(ctx, "")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.Persist(ctx, store.New(nil, nil))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func sidebarNames(sb *Sidebar) map[string][]string {
	out := make(map[string][]string)
	for _, c := range sb.Categories {
		for _, e := range c.Entries {
			out[c.DisplayName] = append(out[c.DisplayName], e.Channel.DisplayName)
		}
	}
	return out
}

func TestSnapshotService_SidebarDefaultCategories(t *testing.T) {
	svc := newTestService(t, openDB(t), 0)
	state := sidebarStore("tr").State()

	sb := svc.Sidebar(state)

	assert.Equal(t, "t1", sb.TeamID)
	assert.Equal(t, models.DefaultChannelName, sb.RedirectChannel)
	assert.Equal(t, selectors.UnreadStatus{MentionCount: 1, HasUnread: true}, sb.Unread)

	require.Len(t, sb.Categories, 3)
	assert.Equal(t, []string{"Favoriler", "Kanallar", "Direkt Mesajlar"},
		[]string{sb.Categories[0].DisplayName, sb.Categories[1].DisplayName, sb.Categories[2].DisplayName})
	assert.Equal(t, map[string][]string{
		"Favoriler":       {"Off-Topic"},
		"Kanallar":        {"Town Square"},
		"Direkt Mesajlar": {"bob"},
	}, sidebarNames(sb))

	fav := sb.Categories[0].Entries[0]
	assert.True(t, fav.Unread.IsUnread)
	assert.True(t, sb.Categories[1].Entries[0].Muted)
	assert.Equal(t, 1, sb.Categories[2].Entries[0].Unread.UnreadMentionCount)
}

func TestSnapshotService_SidebarSkipsLeftDirectChannel(t *testing.T) {
	svc := newTestService(t, openDB(t), 0)
	st := sidebarStore("en")
	st.Dispatch(store.LeaveChannel{ChannelID: dm})

	sb := svc.Sidebar(st.State())

	assert.Equal(t, map[string][]string{
		"Favorites": {"Off-Topic"},
		"Channels":  {"Town Square"},
	}, sidebarNames(sb))
}

func TestSnapshotService_RestoreNullChannelEntry(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	state := sidebarStore("en").State()
	channels := *state.Channels
	channels.Channels = maps.Clone(channels.Channels)
	channels.Channels["undefined"] = nil
	withNull := *state
	withNull.Channels = &channels

	_, err := newTestService(t, db, 0).Persist(ctx, store.New(&withNull, nil))
	require.NoError(t, err)

	fresh := newTestService(t, db, 0)
	restored, err := fresh.Restore(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, restored.State().Channels.Channels, "undefined")

	sb := fresh.Sidebar(restored.State())
	assert.Equal(t, []string{"Off-Topic"}, sidebarNames(sb)["Favorites"])
}

func TestSnapshotService_SidebarLoadedCategories(t *testing.T) {
	svc := newTestService(t, openDB(t), 0)
	st := sidebarStore("en")
	st.Dispatch(store.ReceivedCategories{TeamID: "t1", Categories: []*models.ChannelCategory{
		{ID: "work", TeamID: "t1", Type: models.CategoryTypeCustom, DisplayName: "Work", ChannelIDs: []string{"c2", "c1"}},
		{ID: "dms", TeamID: "t1", Type: models.CategoryTypeDirectMessages, ChannelIDs: []string{dm}},
	}})

	sb := svc.Sidebar(st.State())

	assert.Equal(t, map[string][]string{
		"Work":            {"Off-Topic", "Town Square"},
		"Direct Messages": {"bob"},
	}, sidebarNames(sb))
	assert.Equal(t, "work", sb.Categories[0].ID)
}
