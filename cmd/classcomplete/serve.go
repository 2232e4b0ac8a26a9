package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
	"github.com/yacobolo/classcomplete/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve completions over MCP on stdin/stdout",
	Long: `Run a Model Context Protocol server on stdin/stdout. Every client
shares one stylesheet cache. Logs go to stderr.`,
	Args:    cobra.NoArgs,
	PreRunE: preRunLoadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}

		// Parse globals before the first request arrives
		if _, err := provider.Warm(cmd.Context(), provider.GlobalStylesheets()); err != nil {
			return err
		}

		logger := classcomplete.NewLogger(buildLoggerConfig())
		return server.New(provider, version, logger).ServeStdio()
	},
}
