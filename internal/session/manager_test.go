package session

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/store"
)

func setupRecords(t *testing.T) *store.Records {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return store.NewRecords(db, log)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewManager_Defaults(t *testing.T) {
	recs := setupRecords(t)

	m := NewManager(context.Background(), recs, testLogger(), "")

	assert.Equal(t, i18n.LangAr, m.Lang())
	assert.Equal(t, ThemeLight, m.Theme())
}

func TestNewManager_RestoresStoredPreferences(t *testing.T) {
	recs := setupRecords(t)
	ctx := context.Background()
	require.NoError(t, recs.SetLang(ctx, "en"))
	require.NoError(t, recs.SetTheme(ctx, "dark"))

	m := NewManager(ctx, recs, testLogger(), i18n.LangAr)

	assert.Equal(t, i18n.LangEn, m.Lang())
	assert.Equal(t, ThemeDark, m.Theme())
}

func TestNewManager_IgnoresUnknownStoredValues(t *testing.T) {
	recs := setupRecords(t)
	ctx := context.Background()
	require.NoError(t, recs.SetLang(ctx, "fr"))
	require.NoError(t, recs.SetTheme(ctx, "solarized"))

	m := NewManager(ctx, recs, testLogger(), i18n.LangEn)

	assert.Equal(t, i18n.LangEn, m.Lang())
	assert.Equal(t, ThemeLight, m.Theme())
}

func TestToggleLang_PersistsAcrossRestart(t *testing.T) {
	recs := setupRecords(t)
	ctx := context.Background()

	m := NewManager(ctx, recs, testLogger(), i18n.LangAr)
	lang, err := m.ToggleLang(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.LangEn, lang)

	reborn := NewManager(ctx, recs, testLogger(), i18n.LangAr)
	assert.Equal(t, i18n.LangEn, reborn.Lang())
}

func TestToggleTheme_RoundTrips(t *testing.T) {
	recs := setupRecords(t)
	ctx := context.Background()

	m := NewManager(ctx, recs, testLogger(), "")
	theme, err := m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestTouchVisit(t *testing.T) {
	recs := setupRecords(t)
	ctx := context.Background()

	m := NewManager(ctx, recs, testLogger(), "")
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	files := []models.FileRecord{{ID: 1, Date: "2026-03-09"}}

	// first visit never alerts, but it is recorded
	fresh, err := m.TouchVisit(ctx, files)
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, now.UnixMilli(), recs.LastVisit(ctx))

	// nothing newer than the recorded visit
	now = now.Add(48 * time.Hour)
	fresh, err = m.TouchVisit(ctx, files)
	require.NoError(t, err)
	assert.False(t, fresh)

	// a file dated after the previous visit alerts
	now = now.Add(24 * time.Hour)
	files = append(files, models.FileRecord{ID: 2, Date: "2026-03-13"})
	fresh, err = m.TouchVisit(ctx, files)
	require.NoError(t, err)
	assert.True(t, fresh)

	// unparseable dates are skipped
	fresh, err = m.TouchVisit(ctx, []models.FileRecord{{ID: 3, Date: "yesterday"}})
	require.NoError(t, err)
	assert.False(t, fresh)
}
