package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/feed"
	"github.com/mglynnhenley/loom/internal/logging"
)

// App wraps the Bubbletea program around a feed source.
type App struct {
	program *tea.Program
	model   Model
	source  feed.Source
	log     *logging.Logger
}

// New creates a new TUI application.
func New(cfg *config.Config, log *logging.Logger, source feed.Source) *App {
	if log == nil {
		log = logging.NopLogger()
	}
	return &App{
		model:  NewModel(cfg, log, source),
		source: source,
		log:    log,
	}
}

// SetContinueCallback registers the callback fired when the user
// confirms a completed generation.
func (a *App) SetContinueCallback(fn func()) {
	a.model.SetContinueCallback(fn)
}

// Run starts the feed source and the TUI, blocking until the user quits.
// Map handles and the feed source are released on every exit path.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		if err := a.model.ReleaseResources(); err != nil {
			a.log.Warn("resource release failed", "error", err)
		}
		if err := a.source.Close(); err != nil {
			a.log.Warn("feed close failed", "error", err)
		}
	}()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Drive the feed source; its events reach the model through the
	// waitForEvent command reading the source channel.
	go func() {
		if err := a.source.Run(ctx); err != nil {
			a.log.Error("feed source stopped", "error", err)
		}
	}()

	// Graceful shutdown on signals so deferred teardown still runs.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
