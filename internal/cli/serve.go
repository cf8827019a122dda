package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/feileberlin/krwl.in-sub005/internal/server"
)

// serveCommand creates the serve command for running the preview API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview API",
		Long: `Run the HTTP preview API.

The server exposes the placement pipeline over JSON: POST /api/placements for
passes, POST /api/hover for hover callouts, and the bookmark endpoints backed
by the configured store (file by default, redis when configured). It shuts
down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8710)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	store, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return server.New(cfg, c.Logger, store).ListenAndServe(ctx)
}
