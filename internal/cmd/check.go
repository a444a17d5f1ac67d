package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenibako/qlab-csv/internal/output"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report issues in a plot without writing cues",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, args[0])
		},
	}
}

func runCheck(c *cobra.Command, path string) error {
	opts, err := conversionOptions(GetResolvedConfig())
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	result := convertPlot(c, path, opts)
	w := c.OutOrStdout()

	fmt.Fprintln(w, result.Summary())
	if all := result.Issues(); len(all) > 0 {
		fmt.Fprintln(w, output.RenderIssueTable(all))
	} else {
		fmt.Fprintln(w, "No issues found.")
	}

	if result.HasFatalErrors() {
		return &ExitError{
			Err:     fmt.Errorf("checking %s: %w", path, ErrFatalIssues),
			Code:    ExitGeneralError,
			Printed: true,
		}
	}
	return nil
}
