// Package cmd holds the ygoproxy command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/logger"
)

var (
	configPath string
	logLevel   string
	version    = "dev"
	commit     = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "ygoproxy",
	Short:         "Search Yu-Gi-Oh! cards, build decks and print proxy sheets",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, v, c string) int {
	version, commit = v, c
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.LogError("Command failed", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// loadConfig reads --config, falling back to defaults when the file does
// not exist, and installs the logger.
func loadConfig() (*printer.Config, error) {
	cfg, err := printer.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = printer.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
	}
	setupLogger(cfg.Log)
	return cfg, nil
}

func setupLogger(cfg printer.LogConfig) {
	if cfg.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})))
		return
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Level)))
}

// withApp loads the config, wires the services and runs fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *printer.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := printer.New(ctx, *cfg, version, commit)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}

var errNoStore = errors.New("no store configured; set [store] driver to postgres or mongo")
