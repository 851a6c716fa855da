package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridcal/internal/server"
)

// serveCommand creates the "serve" command, which exposes the week
// resolver and the renderer over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve weeks and calendars over HTTP",
		Long: `Start an HTTP server.

Endpoints:
  GET /healthz
  GET /api/v1/weeks/{year}
  GET /api/v1/weeks/{year}/{week}
  GET /api/v1/calendar?from=2025&to=2030&kind=week&mode=gapped&format=svg`,
		Example: "  gridcal serve --addr :8080 --redis-addr localhost:6379",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			runner, err := c.newRunner(ctx, noCache, redisAddr)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			err = server.New(runner, logger).ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed) {
				logger.Info("server stopped")
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8080", "listen address")
	f.StringVar(&redisAddr, "redis-addr", "", "Redis address for a shared cache (default: file cache)")
	f.BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
