package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/summarize-app/summarize/internal/common"
)

func (a *App) queue(ctx context.Context) {
	pending, err := a.files.Queue(ctx)
	if err != nil {
		a.center.Warning(a.t("mustLoginFirst"))
		return
	}
	if len(pending) == 0 {
		fmt.Fprintln(a.out, a.t("noFiles"))
		return
	}

	fmt.Fprintln(a.out, a.t("reviewQueue"))
	for _, f := range pending {
		fmt.Fprintf(a.out, "  #%-4d %-40s %-15s %s · %s\n", f.ID, f.Title, f.Subject, f.Date, f.UploadedByName)
	}
}

func (a *App) approve(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: approve <id>")
		return
	}

	switch err := a.files.Approve(ctx, id); {
	case errors.Is(err, common.ErrUnauthorized):
		a.center.Warning(a.t("mustLoginFirst"))
	case errors.Is(err, common.ErrNotFound):
		a.center.Error(a.t("fileNotFound"))
	case err != nil:
		a.log.Error(ctx, "approve failed", "error", err)
	default:
		a.center.Success(a.t("success"))
	}
}

func (a *App) reject(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: reject <id>")
		return
	}

	switch err := a.files.Reject(ctx, id); {
	case errors.Is(err, common.ErrUnauthorized):
		a.center.Warning(a.t("mustLoginFirst"))
	case errors.Is(err, common.ErrNotFound):
		a.center.Error(a.t("fileNotFound"))
	case err != nil:
		a.log.Error(ctx, "reject failed", "error", err)
	default:
		a.center.Success(a.t("success"))
	}
}

func (a *App) deleteFile(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}

	switch err := a.files.Delete(ctx, id); {
	case errors.Is(err, common.ErrUnauthorized):
		a.center.Warning(a.t("mustLoginFirst"))
	case errors.Is(err, common.ErrNotFound):
		a.center.Error(a.t("fileNotFound"))
	case err != nil:
		a.log.Error(ctx, "delete failed", "error", err)
	default:
		a.center.Success(a.t("success"))
	}
}

func (a *App) users(ctx context.Context) {
	if !a.gate.IsAdmin(ctx) {
		a.center.Warning(a.t("mustLoginFirst"))
		return
	}

	all := a.recs.Users(ctx)
	if len(all) == 0 {
		fmt.Fprintln(a.out, a.t("noUsers"))
		return
	}
	fmt.Fprintln(a.out, a.t("registeredUsers"))
	for _, u := range all {
		fmt.Fprintf(a.out, "  %-36s %-25s %-30s %s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

// clearAll asks for confirmation before wiping every collection.
func (a *App) clearAll(ctx context.Context) {
	if !a.gate.IsAdmin(ctx) {
		a.center.Warning(a.t("mustLoginFirst"))
		return
	}

	answer, err := getSimpleText(a.reader, a.t("confirmClear")+" (yes/no)", os.Stdout)
	if err != nil || !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, a.t("cancel"))
		return
	}

	if err := a.files.ClearAll(ctx); err != nil {
		a.log.Error(ctx, "clear failed", "error", err)
		return
	}
	a.center.Success(a.t("success"))
}
