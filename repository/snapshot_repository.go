// Package repository, veritabanı erişimini interface'ler arkasında toplar.
// Implementasyonlar database.TxQuerier alır; aynı repository hem *sql.DB
// hem transaction'a bağlı *sql.Tx ile çalışır.
package repository

import (
	"context"

	"github.com/akinalp/chanview/models"
	"github.com/akinalp/chanview/store"
)

// SnapshotRepository, store snapshot'larının veritabanı işlemleri için interface.
type SnapshotRepository interface {
	// Save, snapshot'ı ve tüm bölümlerini yazar. Atomik olması için
	// transaction'a bağlı bir repository üzerinden çağrılmalıdır.
	Save(ctx context.Context, snapshot *models.Snapshot, state *store.State) error

	// LoadLatest, kullanıcının en yeni snapshot'ını döner; yoksa pkg.ErrNotFound.
	LoadLatest(ctx context.Context, userID string) (*models.Snapshot, *store.State, error)

	// Prune, kullanıcının en yeni keep snapshot'ı dışındakileri siler
	// ve silinen sayısını döner.
	Prune(ctx context.Context, userID string, keep int) (int64, error)
}
