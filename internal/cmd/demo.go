package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overlaykit/scrollgate/internal/config"
	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
	"github.com/overlaykit/scrollgate/internal/scrolllock"
	"github.com/overlaykit/scrollgate/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive scroll-lock demo",
	Long: `Run a terminal UI with a scrollable page and stackable overlays.
Each overlay holds its own scroll-lock handle on the shared page; the
status bar shows the live overflow style, holder count, and padding
compensation as overlays open and close.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	bus := event.NewBus()
	reg := scrolllock.NewRegistry(bus, log)

	app := tui.New(cfg, reg, bus, log)

	// Hot-reload the config file while the demo runs, if one is in use.
	if path := viper.ConfigFileUsed(); path != "" {
		watcher, werr := config.NewWatcher(path, app.ApplyConfig, log)
		if werr != nil {
			log.Warn("config watching disabled", "error", werr)
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
