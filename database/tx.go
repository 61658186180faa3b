// Package database — Transaction yönetimi.
//
// Snapshot kaydı birden fazla yazma işlemidir: snapshots satırı, her
// section için bir snapshot_sections satırı ve ardından eski snapshot'ların
// budanması. Bunlardan biri yarıda kalırsa section'ı eksik bir snapshot
// DB'de kalır ve sonraki Restore onu decode edemez.
//
// Transaction nedir?
// Normalde her query ayrı ayrı commit edilir. Transaction ile bütün
// adımlar tek bir birim olarak çalışır:
// - Hepsi başarılı → COMMIT (kalıcı yaz)
// - Herhangi biri başarısız → ROLLBACK (hiçbirini yazma)
//
// Kullanım:
//
//	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
//	    repo := repository.NewSQLiteSnapshotRepo(tx)
//	    if err := repo.Save(ctx, snapshot, state); err != nil {
//	        return err  // → ROLLBACK
//	    }
//	    _, err := repo.Prune(ctx, userID, keep)
//	    return err  // nil → COMMIT
//	})
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
//
// Repository'ler bu interface'i dependency olarak alır: okuma yolunda
// (LoadLatest) *sql.DB, Persist içinde *sql.Tx geçilir. Repository kodu
// hangisiyle çalıştığını bilmez.
//
// database/sql paketinde böyle bir interface yok; üç metodun imzası
// iki tipte de aynı olduğu için ikisi de bunu otomatik karşılar.
type TxQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx, fn'i tek bir transaction içinde çalıştırır.
//
// Davranış:
// 1. BEGIN
// 2. fn(tx) çağır
// 3. fn nil dönerse → COMMIT
// 4. fn error dönerse → ROLLBACK
// 5. fn panic atarsa → ROLLBACK, sonra panic tekrar fırlatılır
//
// Panic'te rollback yapılmazsa transaction açık kalır ve SQLite yazma
// kilidi bırakılmaz; sonraki Persist çağrıları busy_timeout'a takılır.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Panic veya error durumunda rollback garantisi
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			// Rollback da başarısız olursa iki hata birleştirilir
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)
	return
}
