package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/domain"
)

// searchOutput is the --json rendering of a search.
type searchOutput struct {
	Query  string `json:"query"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// NewSearchCommand creates the one-shot search command
func NewSearchCommand(container *app.Container) *cobra.Command {
	var (
		noCache    bool
		asJSON     bool
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a single web search through the Gemini CLI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.SearchService == nil {
				return errors.New(ErrSearchServiceUnavailable)
			}
			query := strings.Join(args, " ")
			result, err := container.SearchService.Execute(query, !noCache)
			if exportErr := exportHistory(container, exportPath); exportErr != nil {
				return exportErr
			}
			if asJSON {
				if encErr := renderSearchJSON(cmd.OutOrStdout(), query, result, err); encErr != nil {
					return encErr
				}
				if err != nil {
					return &ReportedError{Err: err}
				}
				return nil
			}
			if err != nil {
				renderSearchError(cmd.ErrOrStderr(), err)
				return &ReportedError{Err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(result, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the result cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the outcome as JSON")
	cmd.Flags().StringVar(&exportPath, "export-history", "", "Write the history record to a .jsonl or .db file")
	return cmd
}

func renderSearchJSON(out io.Writer, query, result string, err error) error {
	payload := searchOutput{Query: query, Result: result}
	if err != nil {
		kind := domain.KindOf(err)
		payload.Error = err.Error()
		payload.Kind = string(kind)
		payload.Hint = domain.Hint(kind)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderSearchError(out io.Writer, err error) {
	kind := domain.KindOf(err)
	fmt.Fprintf(out, "Search failed: %v\n", err)
	fmt.Fprintf(out, "Hint: %s\n", domain.Hint(kind))
}
