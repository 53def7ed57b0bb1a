package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/summarize-app/summarize/internal/auth"
	"github.com/summarize-app/summarize/internal/config"
	"github.com/summarize-app/summarize/internal/files"
	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/notify"
	"github.com/summarize-app/summarize/internal/security"
	"github.com/summarize-app/summarize/internal/session"
	"github.com/summarize-app/summarize/internal/store"
)

// newTestApp wires an App over in-memory databases, with output captured in
// the returned buffer.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	recs := store.NewRecords(db, logger)
	blobs := store.NewBlobStore(":memory:")
	t.Cleanup(func() { _ = blobs.Close() })

	center := notify.NewCenter(nil)
	gate := auth.NewService(recs, security.NewRateLimiter(nil), logger)
	sess := session.NewManager(ctx, recs, logger, i18n.LangEn)
	fileSvc := files.NewService(db, blobs, gate, center, logger, files.Options{Lang: sess.Lang})

	require.NoError(t, gate.InitAdmin(ctx))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	a := &App{
		config:  cfg,
		recs:    recs,
		blobs:   blobs,
		gate:    gate,
		files:   fileSvc,
		session: sess,
		center:  center,
		log:     logger,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}
	center.Subscribe(a.renderToast)
	return a, out
}

// stubInput replaces the interactive seams with queued answers.
func stubInput(t *testing.T, answers []string, password string) {
	t.Helper()

	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.Less(t, i, len(answers), "more prompts than stubbed answers")
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		return password, nil
	}
}

func TestRegisterCommand_LogsUserIn(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"Sara Ali", "sara@uni.edu"}, "pass123")
	a.register(ctx)

	u := a.gate.CurrentUser(ctx)
	require.NotNil(t, u)
	assert.Equal(t, "Sara Ali", u.Name)
	assert.Contains(t, out.String(), "[success]")
}

func TestRegisterCommand_DuplicateEmailToast(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"Sara Ali", "ahmed@summarize.com"}, "pass123")
	a.register(ctx)

	assert.Contains(t, out.String(), "[error] Email already in use")
}

func TestLoginCommand_BootstrapAdmin(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"ahmed@summarize.com"}, "2008.")
	a.login(ctx)

	assert.True(t, a.gate.IsAdmin(ctx))
	assert.Contains(t, out.String(), "[success] Welcome, Ahmed (Owner)")
}

func TestDownloadCommand_SavesPayload(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"ahmed@summarize.com"}, "2008.")
	a.login(ctx)

	require.NoError(t, a.recs.SaveFiles(ctx, []models.FileRecord{
		{ID: 1, Title: "Calc", Type: models.FileTypeSummary},
	}))
	require.NoError(t, a.blobs.Put(ctx, 1, []byte("payload")))

	dir := t.TempDir()
	t.Chdir(dir)

	a.download(ctx, []string{"1"})

	assert.Contains(t, out.String(), "[success] Download started!")
	assert.Contains(t, out.String(), "Saved Calc")
}

func TestDownloadCommand_UsesConfiguredRedirectDelay(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()
	a.config.LoginRedirectDelay = time.Millisecond

	// abort the login prompt immediately so only the delay is measured
	origText := getSimpleText
	t.Cleanup(func() { getSimpleText = origText })
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return "", io.EOF
	}

	start := time.Now()
	a.download(ctx, []string{"1"})
	elapsed := time.Since(start)

	assert.Contains(t, out.String(), "[warning]")
	assert.Less(t, elapsed, files.LoginRedirectDelay, "the configured delay must replace the built-in default")
}

func TestQueueCommand_RequiresAdmin(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	a.queue(ctx)

	assert.Contains(t, out.String(), "[warning] Must login first")
}

func TestBrowseCommand_RendersSections(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.recs.SaveFiles(ctx, []models.FileRecord{
		{ID: 1, Title: "Calc", Subject: "Math", Type: models.FileTypeSummary},
		{ID: 2, Title: "Final 2025", Subject: "Math", Type: models.FileTypePastExam},
	}))

	a.browse(ctx, nil)

	s := out.String()
	assert.Contains(t, s, "== Summary (1)")
	assert.Contains(t, s, "== Past Exam (1)")
	assert.Contains(t, s, "Calc")
}
