package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/chanview/database"
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/store"
)

func openDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "snapshots.db"), database.Migrations(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func stateWithChannel(channelID string) *store.State {
	st := store.New(nil, nil)
	st.Dispatch(store.SetCurrentUser{UserID: "u1"})
	st.Dispatch(store.ReceivedChannels{Channels: []*models.Channel{
		{ID: channelID, TeamID: "t1", Type: models.ChannelTypeOpen, Name: channelID},
	}})
	return st.State()
}

func newSnapshot(userID string, at time.Time) *models.Snapshot {
	return &models.Snapshot{ID: uuid.NewString(), UserID: userID, StoreVersion: 2, CreatedAt: at}
}

func TestSnapshotRepo_SaveAndLoadLatest(t *testing.T) {
	db := openDB(t)
	repo := NewSQLiteSnapshotRepo(db.Conn)
	ctx := context.Background()

	base := time.UnixMilli(1_700_000_000_000).UTC()
	older := newSnapshot("u1", base)
	newer := newSnapshot("u1", base.Add(time.Minute))

	require.NoError(t, repo.Save(ctx, older, stateWithChannel("old")))
	require.NoError(t, repo.Save(ctx, newer, stateWithChannel("new")))
	require.NoError(t, repo.Save(ctx, newSnapshot("u2", base.Add(time.Hour)), stateWithChannel("other")))

	snap, state, err := repo.LoadLatest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, newer, snap)
	assert.Contains(t, state.Channels.Channels, "new")
	assert.Equal(t, "u1", state.Users.CurrentUserID)
}

func TestSnapshotRepo_LoadLatestNotFound(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(openDB(t).Conn)

	_, _, err := repo.LoadLatest(context.Background(), "nobody")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSnapshotRepo_Prune(t *testing.T) {
	db := openDB(t)
	repo := NewSQLiteSnapshotRepo(db.Conn)
	ctx := context.Background()

	base := time.UnixMilli(1_700_000_000_000).UTC()
	var latest *models.Snapshot
	for i := range 4 {
		latest = newSnapshot("u1", base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Save(ctx, latest, stateWithChannel("c")))
	}
	require.NoError(t, repo.Save(ctx, newSnapshot("u2", base), stateWithChannel("c")))

	deleted, err := repo.Prune(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var snapshots, sections int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&snapshots))
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(DISTINCT snapshot_id) FROM snapshot_sections").Scan(&sections))
	assert.Equal(t, 3, snapshots)
	assert.Equal(t, 3, sections)

	snap, _, err := repo.LoadLatest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, snap.ID)
}
