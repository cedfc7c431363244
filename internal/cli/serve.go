package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/flamefold/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Run an HTTP server exposing the rendering pipeline.

Endpoints:
  POST /render   render folded text to svg, png, or json
  GET  /healthz  liveness probe
  GET  /metrics  Prometheus metrics

The server shares the CLI's cache configuration, so artifacts rendered via
the API and the render command hit the same cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = c.config().Server.Listen
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}

			srv := server.New(runner, c.Logger)
			return srv.ListenAndServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "address to bind (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}
