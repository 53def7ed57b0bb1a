package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/summarize-app/summarize/internal/common"
)

// DefaultBlobDBName is the fixed database identifier for the blob store.
const DefaultBlobDBName = "summarizee.db"

// BlobStore holds binary file payloads, keyed by FileRecord id, in a database
// separate from the serialized record collections. The database is opened
// lazily on first use; a record without a blob is a normal, reportable state,
// so Get returns (nil, nil) for an absent payload.
type BlobStore struct {
	dsn string

	mu  sync.Mutex
	db  *sql.DB
	err error
}

// NewBlobStore prepares a blob store at the given sqlite DSN. Nothing is
// opened until the first call.
func NewBlobStore(dsn string) *BlobStore {
	return &BlobStore{dsn: dsn}
}

// open opens (and bootstraps) the blob database once. An open failure is
// remembered and surfaced as ErrStorageUnavailable on every call.
func (s *BlobStore) open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil || s.err != nil {
		return s.db, s.err
	}

	db, err := sql.Open("sqlite", s.dsn)
	if err == nil {
		_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS files (
			file_id INTEGER PRIMARY KEY,
			content BLOB NOT NULL
		)`)
	}
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		s.err = fmt.Errorf("%w: open blob store: %v", common.ErrStorageUnavailable, err)
		return nil, s.err
	}

	s.db = db
	return s.db, nil
}

// Get returns the payload for a file id, or (nil, nil) when no blob exists.
func (s *BlobStore) Get(ctx context.Context, fileID int64) ([]byte, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	var content []byte
	err = db.QueryRowContext(ctx, `SELECT content FROM files WHERE file_id = ?`, fileID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob[%d]: %w", fileID, err)
	}
	return content, nil
}

// Put stores (or replaces) the payload for a file id.
func (s *BlobStore) Put(ctx context.Context, fileID int64, content []byte) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO files (file_id, content) VALUES (?, ?)
		ON CONFLICT(file_id) DO UPDATE SET content = excluded.content
	`, fileID, content)
	if err != nil {
		return fmt.Errorf("failed to put blob[%d]: %w", fileID, err)
	}
	return nil
}

// Delete removes the payload for a file id. Deleting an absent blob is not
// an error.
func (s *BlobStore) Delete(ctx context.Context, fileID int64) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM files WHERE file_id = ?`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete blob[%d]: %w", fileID, err)
	}
	return nil
}

// Clear removes every payload.
func (s *BlobStore) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM files`); err != nil {
		return fmt.Errorf("failed to clear blobs: %w", err)
	}
	return nil
}

// Close releases the database handle if it was ever opened.
func (s *BlobStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.err = nil
	return err
}
