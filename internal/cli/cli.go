// Package cli implements the flowdeck command-line interface.
//
// This package provides commands for importing diagram documents into
// the live graph, editing the graph interactively, serving the diagram
// API over HTTP, and exporting the graph as DOT or SVG. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - import: Parse a markup or tabular document and load the graph
//   - edit: Interactive terminal session with copy/delete actions
//   - serve: Run the diagram HTTP API
//   - render: Export a document as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/internal/config"
	"github.com/flowdeck/flowdeck/pkg/buildinfo"
	"github.com/flowdeck/flowdeck/pkg/cache"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "flowdeck"

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
		Use:          appName,
		Short:        "Flowdeck imports and edits diagram graphs",
		Long:         `Flowdeck converts diagram documents (XML markup or tabular text) into a live graph of typed nodes and edges, supports interactive copy/delete edits, and exports the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "flowdeck.toml", "config file path")

	root.AddCommand(c.importCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configured flowdeck.toml, falling back to
// defaults when the file is absent.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

// newRunner creates an import pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(ctx, cfg, noCache), c.Logger)
}

// newCache picks the cache backend: null when disabled, redis when
// configured, file cache otherwise. Backend failures degrade to the
// null cache with a warning rather than failing the command.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache()
	}
	if cfg.Cache.Redis != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.Redis)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}
