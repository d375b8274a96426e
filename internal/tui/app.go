// Package tui implements the scrollgate demo: a scrollable page with
// stackable overlays, each holding its own scroll-lock handle.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/overlaykit/scrollgate/internal/config"
	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
	"github.com/overlaykit/scrollgate/internal/scrolllock"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	bus     *event.Bus
}

// New creates a new TUI application
func New(cfg *config.Config, reg *scrolllock.Registry, bus *event.Bus, log *logging.Logger) *App {
	return &App{
		model: NewModel(cfg, reg, log),
		bus:   bus,
	}
}

// Run starts the TUI application and blocks until it exits
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward lock events into the program so the status bar stays live.
	subID := a.bus.SubscribeAll(func(e event.Event) {
		if a.program != nil {
			a.program.Send(lockEventMsg{e})
		}
	})
	defer a.bus.Unsubscribe(subID)

	// Set up signal handling for graceful shutdown so overlays release
	// their locks through the normal quit path
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}

// ApplyConfig delivers a reloaded configuration to the running program.
// Safe to call from any goroutine; a no-op before Run.
func (a *App) ApplyConfig(cfg *config.Config) {
	if a.program != nil {
		a.program.Send(configReloadedMsg{cfg})
	}
}
