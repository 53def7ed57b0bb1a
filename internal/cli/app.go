// Package cli is the interactive terminal frontend: a small REPL over the
// auth gate, the file service, and the catalog.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/summarize-app/summarize/internal/auth"
	"github.com/summarize-app/summarize/internal/config"
	"github.com/summarize-app/summarize/internal/files"
	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/notify"
	"github.com/summarize-app/summarize/internal/security"
	"github.com/summarize-app/summarize/internal/session"
	"github.com/summarize-app/summarize/internal/store"
)

// App wires the services behind the REPL.
type App struct {
	config  *config.Config
	recs    *store.Records
	blobs   *store.BlobStore
	gate    *auth.Service
	files   *files.Service
	session *session.Manager
	center  *notify.Center
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	closers []func() error
}

// NewApp opens the databases, wires the services, and seeds the bootstrap
// admin before any command can run.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := store.OpenRecordDB(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	recs := store.NewRecords(db, logger)
	blobs := store.NewBlobStore(c.BlobDatabasePath)
	center := notify.NewCenter(nil)

	gate := auth.NewService(recs, security.NewRateLimiter(nil), logger)
	gate.SetLoginThrottle(c.RateLimitAttempts, c.RateLimitWindow)

	sess := session.NewManager(ctx, recs, logger, i18n.Lang(c.DefaultLanguage))

	fileSvc := files.NewService(db, blobs, gate, center, logger, files.Options{
		MaxFileMB:  c.MaxFileMB,
		Moderation: c.ModerationEnabled,
		Lang:       sess.Lang,
	})

	if err := gate.InitAdmin(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		recs:    recs,
		blobs:   blobs,
		gate:    gate,
		files:   fileSvc,
		session: sess,
		center:  center,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []func() error{blobs.Close, db.Close},
	}
	center.Subscribe(a.renderToast)
	return a, nil
}

// Run drives the REPL until the user exits, then releases the databases.
func (a *App) Run(ctx context.Context) {
	defer func() {
		for _, close := range a.closers {
			if err := close(); err != nil {
				a.log.Warn(ctx, "close failed", "error", err)
			}
		}
	}()
	a.Root(ctx)
}

func (a *App) t(key string) string {
	return i18n.Translate(a.session.Lang(), key)
}

func (a *App) renderToast(n notify.Notification) {
	fmt.Fprintf(a.out, "[%s] %s\n", n.Severity, n.Message)
}
