// Package store is the persistence layer: a key/value record store holding
// the serialized collections, and a separate blob database for binary file
// payloads. Both are plain local sqlite files; same-process, synchronous
// access with no locking across processes (last writer wins).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/summarize-app/summarize/internal/dbx"
)

// KV is the persistent key/value store backing every record collection and
// preference. Get returns (nil, nil) when the key is absent.
type KV struct {
	db dbx.DBTX
}

// NewKV binds a KV to a database handle or transaction.
func NewKV(db dbx.DBTX) *KV {
	return &KV{db: db}
}

func (r *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *KV) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
