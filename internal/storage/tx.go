package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// execer is the write surface shared by *sql.DB and *sql.Tx. Repo update
// helpers take it so the same statement can run standalone or inside a
// WithTx block.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WithTx runs fn in a single transaction, committing only when fn returns
// nil. The multi-statement writers depend on it: slot replacement
// (delete+insert), character deletion (four tables) and reward claims
// (character exp + task record must land together or not at all).
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
