package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/summarize-app/summarize/internal/catalog"
	"github.com/summarize-app/summarize/internal/common"
	"github.com/summarize-app/summarize/internal/files"
	"github.com/summarize-app/summarize/internal/models"
)

// browse renders the catalog sections, optionally narrowed to one file type.
func (a *App) browse(ctx context.Context, args []string) {
	records := a.files.Published(ctx)

	if len(args) > 0 {
		records = catalog.Filter(records, catalog.FilterOptions{Type: models.FileType(args[0])})
	}

	a.renderSections(catalog.Build(records, a.recs.Users(ctx), a.session.Lang()))
}

// search narrows the catalog by a free-text query over titles and subjects.
func (a *App) search(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search <text>")
		return
	}

	records := catalog.Filter(a.files.Published(ctx), catalog.FilterOptions{
		Query: strings.Join(args, " "),
	})
	a.renderSections(catalog.Build(records, a.recs.Users(ctx), a.session.Lang()))
}

func (a *App) renderSections(sections []catalog.Section) {
	if len(sections) == 0 {
		fmt.Fprintln(a.out, a.t("noFiles"))
		return
	}
	for _, sec := range sections {
		fmt.Fprintf(a.out, "== %s (%d)\n", sec.Label, sec.Count)
		for _, c := range sec.Cards {
			who := c.UploaderName
			if c.AvatarInitials != "" {
				who = fmt.Sprintf("[%s] %s", c.AvatarInitials, who)
			}
			fmt.Fprintf(a.out, "  #%-4d %-40s %-15s %s · %s · %d %s · %s\n",
				c.ID, c.Title, c.Subject, c.Date, c.Size, c.Downloads, a.t("cardDownloads"), who)
		}
	}
}

func (a *App) details(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: details <id>")
		return
	}

	for _, sec := range catalog.Build(a.files.Published(ctx), a.recs.Users(ctx), a.session.Lang()) {
		for _, c := range sec.Cards {
			if c.ID != id {
				continue
			}
			fmt.Fprintf(a.out, "%s — %s (%s)\n", c.Title, c.Subject, sec.Label)
			if c.Description != "" {
				fmt.Fprintf(a.out, "%s: %s\n", a.t("description"), c.Description)
			}
			fmt.Fprintf(a.out, "%s: %d  %s: %s  %s: %s\n",
				a.t("pageCount"), c.PageCount, a.t("size"), c.Size, a.t("date"), c.Date)
			fmt.Fprintf(a.out, "%s: %d  %s: %s\n",
				a.t("downloads"), c.Downloads, a.t("uploadedBy"), c.UploaderName)
			return
		}
	}
	a.center.Error(a.t("fileNotFound"))
}

// download fetches a file's payload into the working directory. When the
// user is not logged in, the service has already shown the warning; the REPL
// waits out the redirect delay and opens the login prompt, mirroring the
// redirect-to-login flow.
func (a *App) download(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: download <id>")
		return
	}

	res, err := a.files.Download(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			time.Sleep(a.redirectDelay())
			a.login(ctx)
		}
		return
	}

	if err := os.MkdirAll("downloads", 0o755); err != nil {
		a.log.Error(ctx, "saving download failed", "error", err)
		return
	}
	name := filepath.Join("downloads", fmt.Sprintf("summarize_%d", id))
	if err := os.WriteFile(name, res.Content, 0o600); err != nil {
		a.log.Error(ctx, "saving download failed", "error", err)
		return
	}
	fmt.Fprintf(a.out, "Saved %s to %s\n", res.Record.Title, name)
}

// redirectDelay is how long the warning toast stays on screen before the
// login prompt opens, configurable per Config.
func (a *App) redirectDelay() time.Duration {
	if a.config != nil && a.config.LoginRedirectDelay > 0 {
		return a.config.LoginRedirectDelay
	}
	return files.LoginRedirectDelay
}

func (a *App) toggleLang(ctx context.Context) {
	lang, err := a.session.ToggleLang(ctx)
	if err != nil {
		a.log.Error(ctx, "saving language failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Language:", lang)
}

func (a *App) toggleTheme(ctx context.Context) {
	theme, err := a.session.ToggleTheme(ctx)
	if err != nil {
		a.log.Error(ctx, "saving theme failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Theme:", theme)
}
