package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/version"
)

// NewVersionCommand prints the build and the identity the MCP server announces.
func NewVersionCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show gemsearch build and MCP server identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeVersion(cmd.OutOrStdout(), container.Config)
			return nil
		},
	}
}

func writeVersion(out io.Writer, cfg domain.Config) {
	name := cfg.Server.Name
	if name == "" {
		name = domain.DefaultServerName
	}
	binary := cfg.Gemini.Binary
	if binary == "" {
		binary = domain.DefaultGeminiBinary
	}

	fmt.Fprintf(out, "gemsearch %s", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, " (%s", version.Commit)
		if version.BuildDate != "" {
			fmt.Fprintf(out, ", built %s", version.BuildDate)
		}
		fmt.Fprint(out, ")")
	}
	fmt.Fprintf(out, " %s/%s %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Fprintf(out, "mcp server: %s %s, protocol %s\n", name, version.Version, mcp.LATEST_PROTOCOL_VERSION)
	fmt.Fprintf(out, "search backend: %s -p %q\n", binary, domain.SearchPromptPrefix+"<query>")
}
