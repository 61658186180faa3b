package models

import "time"

// Snapshot, bir kullanıcının store durumunun kalıcı kaydının üst bilgisi.
// Bölüm payload'ları ayrı satırlarda (snapshot_sections) tutulur.
type Snapshot struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StoreVersion int64     `json:"store_version"` // Kaydedildiği andaki Store.Version()
	CreatedAt    time.Time `json:"created_at"`
}
