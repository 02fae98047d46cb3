package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/services"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	log    logging.Logger
	theme  Theme
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires an App reading from stdin and writing prompts to stdout.
func NewApp(c *config.Config, auth services.AuthService, log logging.Logger) *App {
	return &App{
		config: c,
		auth:   auth,
		log:    log.With("component", "cli"),
		theme:  DefaultTheme,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run restores the saved session and then serves commands until the user
// exits, input ends or ctx is cancelled. No command is read before the
// restore has finished.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)
	if a.auth.Restoring() {
		return
	}

	printlnFn(a.theme.Title.Render(figure.NewFigure("authshell", "cybermedium", true).String()))
	printlnFn(a.theme.Title.Render("Welcome to authshell") + " (type 'help' for commands)")
	if a.isLoggedIn() {
		_ = a.Home(ctx)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// restore shows the loading notice for at least the configured splash
// delay while the session manager reads the saved session.
func (a *App) restore(ctx context.Context) {
	printlnFn(a.theme.Muted.Render("Loading..."))

	start := time.Now()
	a.auth.Restore(ctx)

	wait := a.config.SplashDelay - time.Since(start)
	if wait <= 0 {
		return
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

func (a *App) status() string {
	if u := a.auth.CurrentUser(); u != nil {
		return u.Email
	}
	return "guest"
}
