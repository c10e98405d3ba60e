// Package postgres implements the blob-store contract on a single
// key-value table, for deployments without an object store.
package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"newsletter_sync/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS records (
		key          TEXT PRIMARY KEY,
		value        BYTEA NOT NULL,
		content_type TEXT NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type Blob struct {
	db *sqlx.DB
}

func NewBlob(db *sqlx.DB) (*Blob, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Blob{db: db}, nil
}

func (b *Blob) Put(ctx context.Context, key string, value []byte, contentType string) error {
	query := `
		INSERT INTO records (key, value, content_type, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			content_type = EXCLUDED.content_type,
			updated_at = EXCLUDED.updated_at`

	_, err := b.db.ExecContext(ctx, query, key, value, contentType)
	return err
}

func (b *Blob) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.GetContext(ctx, &value, "SELECT value FROM records WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}
