package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenibako/qlab-csv/convert"
	"github.com/zenibako/qlab-csv/csvfile"
	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/internal/config"
	"github.com/zenibako/qlab-csv/internal/output"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/qlab"
	"github.com/zenibako/qlab-csv/templates"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	var interactive bool

	c := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a plot into QLab cues",
		Long: `Convert a CSV or XLSX plot into QLab cues and write them to stdout.
Use "-" as the file to read CSV from stdin.

Issues found in the plot are reported on stderr. The command exits with
status 1 if any of them is FATAL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c, args[0], interactive)
		},
	}

	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask which template to use when --template is not set")

	return c
}

func runConvert(c *cobra.Command, path string, interactive bool) error {
	cfg := GetResolvedConfig()

	format, err := output.ParseOutputFormat(cfg.Output)
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	opts, err := conversionOptions(cfg)
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	if interactive && opts.Template == "" && path != stdinPath && isTerminal() {
		opts.Template, err = chooseTemplate(path, opts.Sheet)
		if err != nil {
			return NewExitError(err, ExitGeneralError)
		}
	}

	result := convertPlot(c, path, opts)
	reportIssues(c.ErrOrStderr(), result)
	if cfg.Verbose {
		result.ParseIssues.Log(output.Logger)
		result.CueIssues.Log(output.Logger)
	}

	if result.HasFatalErrors() {
		output.Error("Conversion failed", "path", path)
		return &ExitError{
			Err:     fmt.Errorf("converting %s: %w", path, ErrFatalIssues),
			Code:    ExitGeneralError,
			Printed: true,
		}
	}

	if err := writeResult(c.OutOrStdout(), format, workspaceName(path), result); err != nil {
		return NewExitError(err, ExitGeneralError)
	}
	return nil
}

// conversionOptions turns resolved config into conversion options.
func conversionOptions(cfg *config.Config) (convert.Options, error) {
	kind, err := templates.ParseKind(cfg.Template)
	if err != nil {
		return convert.Options{}, err
	}
	return convert.Options{
		Template: kind,
		Patch:    cfg.Patch,
		LogFile:  cfg.LogFile,
		Sheet:    cfg.Sheet,
	}, nil
}

// stdinPath names standard input in place of a plot file.
const stdinPath = "-"

// convertPlot converts the plot at path, or CSV from stdin for "-".
func convertPlot(c *cobra.Command, path string, opts convert.Options) *convert.Result {
	if path == stdinPath {
		return convert.Reader(c.InOrStdin(), opts)
	}
	return convert.File(path, opts)
}

// chooseTemplate reads the headers of path and prompts with the detected
// template preselected. Unreadable files fall through to the conversion,
// which reports why.
func chooseTemplate(path, sheet string) (templates.Kind, error) {
	file := csvfile.Parse(path, sheet, issues.NewAcceptor())
	if file == nil {
		return "", nil
	}
	return promptTemplate(path, templates.Detect(file.Headers))
}

// reportIssues logs the summary and prints the issue table, if any.
func reportIssues(w io.Writer, result *convert.Result) {
	output.Info(result.Summary(), "template", result.Template, "cues", cues.Count(result.Cues))

	all := result.Issues()
	if len(all) == 0 {
		return
	}
	fmt.Fprintln(w, output.RenderIssueTable(all))
}

// writeResult writes the converted cues to w in format.
func writeResult(w io.Writer, format output.OutputFormat, name string, result *convert.Result) error {
	records := qlab.FromCues(result.Cues)

	var out string
	switch format {
	case output.FormatJSON:
		s, err := qlab.ToJSON(name, records, true)
		if err != nil {
			return err
		}
		out = s
	case output.FormatYAML:
		s, err := qlab.ToYAML(name, records)
		if err != nil {
			return err
		}
		out = strings.TrimSuffix(s, "\n")
	case output.FormatCue:
		out = qlab.WriteCueFile(name, records, "Generated by qlabcsv")
	case output.FormatPlan:
		out = output.RenderPlanTable(qlab.Plan(records))
	default:
		out = output.RenderCueTable(result.Cues)
	}

	if _, err := fmt.Fprintln(w, strings.TrimSuffix(out, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// workspaceName is the plot file name without its extension.
func workspaceName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
