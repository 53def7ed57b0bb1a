package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := string(a.session.Lang())
	if u := a.gate.CurrentUser(context.Background()); u != nil {
		s = u.Name + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root is the command loop. Commands needing privilege report their own
// refusals; the loop itself only dispatches.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Summarize CLI (type 'help' for commands)")

	if fresh, err := a.session.TouchVisit(ctx, a.files.Published(ctx)); err != nil {
		a.log.Warn(ctx, "visit tracking failed", "error", err)
	} else if fresh {
		a.center.Info(a.t("newFilesAlert"))
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "summarize %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help(ctx)
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "profile":
			a.profile(ctx)
		case "browse":
			a.browse(ctx, args)
		case "search":
			a.search(ctx, args)
		case "details":
			a.details(ctx, args)
		case "download":
			a.download(ctx, args)
		case "upload":
			a.upload(ctx)
		case "queue":
			a.queue(ctx)
		case "approve":
			a.approve(ctx, args)
		case "reject":
			a.reject(ctx, args)
		case "delete":
			a.deleteFile(ctx, args)
		case "users":
			a.users(ctx)
		case "clear":
			a.clearAll(ctx)
		case "lang":
			a.toggleLang(ctx)
		case "theme":
			a.toggleTheme(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help(ctx context.Context) {
	fmt.Fprintln(a.out, "Available commands: browse, search, details, download, lang, theme, whoami, exit")
	if !a.gate.IsAuthenticated(ctx) {
		fmt.Fprintln(a.out, "Account: register, login")
		return
	}
	fmt.Fprintln(a.out, "Account: upload, profile, logout")
	if a.gate.IsAdmin(ctx) {
		fmt.Fprintln(a.out, "Admin: queue, approve <id>, reject <id>, delete <id>, users, clear")
	}
}
