package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/chanview/database"
	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/pkg"
	"github.com/akinalp/chanview/store"
)

// sqliteSnapshotRepo, SnapshotRepository interface'inin SQLite implementasyonu.
type sqliteSnapshotRepo struct {
	db database.TxQuerier
}

// NewSQLiteSnapshotRepo, constructor — interface döner.
func NewSQLiteSnapshotRepo(db database.TxQuerier) SnapshotRepository {
	return &sqliteSnapshotRepo{db: db}
}

func (r *sqliteSnapshotRepo) Save(ctx context.Context, snapshot *models.Snapshot, state *store.State) error {
	payloads, err := store.EncodeSections(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, user_id, store_version, created_at) VALUES (?, ?, ?, ?)`,
		snapshot.ID, snapshot.UserID, snapshot.StoreVersion, snapshot.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for section, payload := range payloads {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO snapshot_sections (snapshot_id, section, payload) VALUES (?, ?, ?)`,
			snapshot.ID, section, string(payload),
		); err != nil {
			return fmt.Errorf("failed to insert snapshot section %s: %w", section, err)
		}
	}

	return nil
}

func (r *sqliteSnapshotRepo) LoadLatest(ctx context.Context, userID string) (*models.Snapshot, *store.State, error) {
	query := `
		SELECT id, user_id, store_version, created_at
		FROM snapshots WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT 1`

	snap := &models.Snapshot{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&snap.ID, &snap.UserID, &snap.StoreVersion, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: no snapshot for user %s", pkg.ErrNotFound, userID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	snap.CreatedAt = time.UnixMilli(createdAt).UTC()

	rows, err := r.db.QueryContext(ctx,
		`SELECT section, payload FROM snapshot_sections WHERE snapshot_id = ?`, snap.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get snapshot sections: %w", err)
	}
	defer rows.Close()

	payloads := make(map[string][]byte)
	for rows.Next() {
		var section, payload string
		if err := rows.Scan(&section, &payload); err != nil {
			return nil, nil, fmt.Errorf("failed to scan snapshot section row: %w", err)
		}
		payloads[section] = []byte(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate snapshot sections: %w", err)
	}

	state, err := store.DecodeSections(payloads)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode snapshot %s: %w", snap.ID, err)
	}

	return snap, state, nil
}

func (r *sqliteSnapshotRepo) Prune(ctx context.Context, userID string, keep int) (int64, error) {
	// snapshot_sections ON DELETE CASCADE ile silinir
	query := `
		DELETE FROM snapshots
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE user_id = ?
			ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`

	result, err := r.db.ExecContext(ctx, query, userID, userID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected, nil
}
