package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/infrastructure/mcpserver"
	"github.com/doeshing/gemsearch/internal/version"
)

// NewServeCommand creates the command that runs the MCP server
func NewServeCommand(container *app.Container) *cobra.Command {
	var (
		useHTTP    bool
		addr       string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.SearchService == nil {
				return errors.New(ErrSearchServiceUnavailable)
			}
			srv, err := mcpserver.New(container.SearchService, container.Logger, mcpserver.Options{
				Name:    container.Config.Server.Name,
				Version: version.Version,
			})
			if err != nil {
				return err
			}
			if useHTTP {
				err = srv.ServeHTTP(cmd.Context(), addr)
			} else {
				err = srv.ServeStdio(cmd.Context(), os.Stdin, os.Stdout)
			}
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			if exportErr := exportHistory(container, exportPath); exportErr != nil {
				return errors.Join(err, exportErr)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&useHTTP, "http", false, "Serve the streamable HTTP transport instead of stdio")
	cmd.Flags().StringVar(&addr, "addr", container.Config.Server.HTTPAddr, "Listen address for --http")
	cmd.Flags().StringVar(&exportPath, "export-history", "", "Dump the session history to a .jsonl or .db file on shutdown")
	return cmd
}
