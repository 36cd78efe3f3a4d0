package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/domain"
)

var statusLabel = map[domain.HealthStatus]string{
	domain.HealthOK:    "ok",
	domain.HealthWarn:  "warn",
	domain.HealthError: "FAIL",
}

// NewDoctorCommand checks config, the gemini binary and in-process state.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that searches can run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())
			writeDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return &ReportedError{Err: err}
			}
			return nil
		},
	}
}

func writeDoctorReport(out io.Writer, report domain.HealthReport) {
	counts := map[domain.HealthStatus]int{}
	for _, check := range report.Checks {
		counts[check.Status]++
		fmt.Fprintf(out, "%-4s  %-14s  %s\n", statusLabel[check.Status], check.Name, check.Details)
	}

	fmt.Fprintf(out, "\n%d checks: %d ok, %d warnings, %d failures\n",
		len(report.Checks), counts[domain.HealthOK], counts[domain.HealthWarn], counts[domain.HealthError])
}
