package cmd

import (
	"fmt"

	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
	"github.com/leanstack/leango/internal/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo",
	Long: `Run the interactive demo menu.

The demo builds the configuration snapshot, points the shared logger
at it, and walks through the adapter, logger, and exception features.
Console log output is captured into an on-screen pane.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Configure(logging.Overrides{
		Name:      cfg.Logging.Name,
		Level:     cfg.Logging.Level,
		Directory: cfg.Logging.Directory,
		FileName:  cfg.LogFileName(),
	})
	defer func() { _ = logging.Close() }()

	// The app redirects the console handler before first acquisition, so
	// the logger has to be pulled after it is built.
	app := tui.New(cfg)
	logger, err := logging.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to acquire logger: %w", err)
	}
	logger.Info("demo starting")

	if err := app.Run(); err != nil {
		logger.Exception("demo terminated abnormally", err)
		return fmt.Errorf("failed to run demo: %w", err)
	}

	logger.Info("demo finished")
	return nil
}
