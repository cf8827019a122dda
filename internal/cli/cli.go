// Package cli implements the krwl command-line interface.
//
// This package provides commands for running placement passes over event
// lists, computing hover callouts, serving the preview API, and inspecting
// passes interactively. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - place: Run a placement pass and write JSON or SVG output
//   - hover: Compute the edge-anchored hover callout for one marker
//   - serve: Run the HTTP preview API
//   - preview: Inspect a placement pass in the terminal
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/feileberlin/krwl.in-sub005/pkg/bookmarks"
	"github.com/feileberlin/krwl.in-sub005/pkg/buildinfo"
	"github.com/feileberlin/krwl.in-sub005/pkg/config"
	"github.com/feileberlin/krwl.in-sub005/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "krwl"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "krwl",
		Short:        "Krwl places event callouts on an interactive map",
		Long:         `Krwl is a CLI tool for the event map annotation engine: it groups markers, deduplicates listings, and places callout boxes with collision-tested randomized layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to TOML config file")

	root.AddCommand(c.placeCommand())
	root.AddCommand(c.hoverCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the TOML config named by --config, or the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newStore builds the bookmark store the config asks for. Redis wins when
// both backends are configured.
func (c *CLI) newStore(ctx context.Context, cfg config.Config) (bookmarks.Store, error) {
	if cfg.Bookmarks.RedisAddr != "" {
		return bookmarks.NewRedisStore(ctx, cfg.Bookmarks.RedisAddr)
	}
	dir := cfg.Bookmarks.Path
	if dir == "" {
		var err error
		dir, err = dataDir()
		if err != nil {
			return nil, err
		}
	}
	return bookmarks.NewFileStore(dir)
}

// dataDir returns the data directory using XDG standard (~/.local/share/krwl/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
