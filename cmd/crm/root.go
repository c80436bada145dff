package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/app"
	"github.com/accessarch/crm/internal/config"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagStorage  string
	flagFixtures string
	flagJSON     bool
)

var rootCmd = &cobra.Command{
	Use:           "crm",
	Short:         "Access Architects CRM dashboard core",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "snapshot database path (default: crm.db)")
	rootCmd.PersistentFlags().StringVar(&flagFixtures, "fixtures", "", "fixtures directory (default: data)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// cliSink prints toast signals as they are emitted: successes to
// stdout, errors to stderr.
type cliSink struct{}

func (cliSink) Emit(sig alerts.Signal) {
	if sig.Level == alerts.LevelError {
		fmt.Fprintln(os.Stderr, sig.Message)
		return
	}
	fmt.Println(sig.Message)
}

// openApp loads config, applies flag overrides, and returns an
// initialized application context. The caller must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagStorage != "" {
		cfg.Storage.Path = flagStorage
	}
	if flagFixtures != "" {
		cfg.Fixtures.Dir = flagFixtures
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	a, err := app.New(cfg, cliSink{}, logger)
	if err != nil {
		return nil, err
	}
	if err := a.Init(cmd.Context()); err != nil {
		a.Close()
		return nil, fmt.Errorf("init store: %w", err)
	}
	return a, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
