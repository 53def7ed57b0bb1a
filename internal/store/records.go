package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/summarize-app/summarize/internal/dbx"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
)

// Keys under which the collections and preferences are persisted.
const (
	KeyUsers       = "users"
	KeyFiles       = "files"
	KeyReview      = "review"
	KeyCurrentUser = "currentUser"
	KeyLang        = "summarize_lang"
	KeyTheme       = "summarize_theme"
	KeyLastVisit   = "summarize_last_visit"
)

// Records exposes typed accessors over the kv store. Each collection is one
// JSON array under a single key, read and written whole.
//
// Reads never fail: corrupt or absent data yields an empty collection, with
// the underlying cause logged. Writes report their errors.
type Records struct {
	kv  *KV
	log logging.Logger
}

// NewRecords binds typed accessors to a database handle or transaction.
func NewRecords(db dbx.DBTX, log logging.Logger) *Records {
	return &Records{kv: NewKV(db), log: log}
}

func loadSlice[T any](ctx context.Context, r *Records, key string) []T {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		r.log.Warn(ctx, "collection read failed, treating as empty", "key", key, "error", err)
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		r.log.Warn(ctx, "collection is corrupt, treating as empty", "key", key, "error", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func saveSlice[T any](ctx context.Context, r *Records, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.kv.Set(ctx, key, data)
}

// Users returns the user registry in stored order.
func (r *Records) Users(ctx context.Context) []models.User {
	return loadSlice[models.User](ctx, r, KeyUsers)
}

func (r *Records) SaveUsers(ctx context.Context, users []models.User) error {
	return saveSlice(ctx, r, KeyUsers, users)
}

// Files returns the published catalog in stored order.
func (r *Records) Files(ctx context.Context) []models.FileRecord {
	return loadSlice[models.FileRecord](ctx, r, KeyFiles)
}

func (r *Records) SaveFiles(ctx context.Context, files []models.FileRecord) error {
	return saveSlice(ctx, r, KeyFiles, files)
}

// Review returns the pending review queue in stored order.
func (r *Records) Review(ctx context.Context) []models.FileRecord {
	return loadSlice[models.FileRecord](ctx, r, KeyReview)
}

func (r *Records) SaveReview(ctx context.Context, files []models.FileRecord) error {
	return saveSlice(ctx, r, KeyReview, files)
}

// CurrentUser returns the persisted session identity, or nil when anonymous.
// A corrupt session record counts as anonymous.
func (r *Records) CurrentUser(ctx context.Context) *models.User {
	data, err := r.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		r.log.Warn(ctx, "session read failed, treating as anonymous", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		r.log.Warn(ctx, "session record is corrupt, treating as anonymous", "error", err)
		return nil
	}
	return &u
}

func (r *Records) SetCurrentUser(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.kv.Set(ctx, KeyCurrentUser, data)
}

func (r *Records) ClearCurrentUser(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyCurrentUser)
}

// Lang returns the stored language preference, "" when unset.
func (r *Records) Lang(ctx context.Context) string {
	return r.pref(ctx, KeyLang)
}

func (r *Records) SetLang(ctx context.Context, lang string) error {
	return r.kv.Set(ctx, KeyLang, []byte(lang))
}

// Theme returns the stored theme preference, "" when unset.
func (r *Records) Theme(ctx context.Context) string {
	return r.pref(ctx, KeyTheme)
}

func (r *Records) SetTheme(ctx context.Context, theme string) error {
	return r.kv.Set(ctx, KeyTheme, []byte(theme))
}

// LastVisit returns the previous visit timestamp in Unix milliseconds,
// 0 when absent or unreadable.
func (r *Records) LastVisit(ctx context.Context) int64 {
	s := r.pref(ctx, KeyLastVisit)
	if s == "" {
		return 0
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.log.Warn(ctx, "last visit timestamp is corrupt", "value", s)
		return 0
	}
	return ms
}

func (r *Records) SetLastVisit(ctx context.Context, unixMillis int64) error {
	return r.kv.Set(ctx, KeyLastVisit, []byte(strconv.FormatInt(unixMillis, 10)))
}

func (r *Records) pref(ctx context.Context, key string) string {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		r.log.Warn(ctx, "preference read failed", "key", key, "error", err)
		return ""
	}
	return string(data)
}
