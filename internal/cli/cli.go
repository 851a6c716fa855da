// Package cli implements the gridcal command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridcal/pkg/buildinfo"
	"github.com/matzehuels/gridcal/pkg/cache"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridcal"

	// redisKeyPrefix scopes shared Redis keys to this application.
	redisKeyPrefix = appName + ":v1:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gridcal lays out year-by-week wall calendars",
		Long: `gridcal renders multi-year calendars as a grid: one row per year, one column
per ISO week (or month), with the date range of every week printed in its cell.
Output goes to SVG, PDF, PNG or a JSON primitive stream.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.weekCommand())
	root.AddCommand(c.weeksCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool, redisAddr string) (*pipeline.Runner, error) {
	cc, keyer, err := c.newCache(ctx, noCache, redisAddr)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache picks the cache backend: none, Redis when an address is given,
// and the XDG file cache otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, cache.Keyer, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil, nil
	case redisAddr != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     redisAddr,
			Password: os.Getenv("GRIDCAL_REDIS_PASSWORD"),
		})
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using redis cache", "addr", redisAddr)
		return rc, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return fc, nil, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gridcal/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
