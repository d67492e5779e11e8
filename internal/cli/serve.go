package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/internal/server"
)

// serveCommand creates the serve command running the diagram HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram HTTP API",
		Long: `Run the diagram HTTP API.

Endpoints:
  GET    /health          liveness probe
  GET    /graph           current graph as JSON
  GET    /graph.svg       current graph rendered as SVG
  POST   /import          import a document (?kind= or ?filename=)
  POST   /nodes/{id}/copy duplicate a node with a connecting edge
  DELETE /nodes/{id}      delete a node and its incident edges`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), listen, noCache)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the diagram cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, listen string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if listen == "" {
		listen = cfg.Listen
	}

	runner := c.newRunner(ctx, cfg, noCache)
	defer runner.Cache.Close()

	srv := server.New(runner, c.Logger)
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving diagram API", "addr", listen)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
