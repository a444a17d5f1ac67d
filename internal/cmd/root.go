package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zenibako/qlab-csv/internal/config"
	"github.com/zenibako/qlab-csv/internal/output"
)

var (
	// Global flags
	configFlag   string
	templateFlag string
	patchFlag    int
	logFileFlag  string
	sheetFlag    string
	outputFlag   string
	verboseFlag  bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.Config
)

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"template": config.KeyTemplate,
	"patch":    config.KeyPatch,
	"log-file": config.KeyLogFile,
	"sheet":    config.KeySheet,
	"output":   config.KeyOutput,
	"verbose":  config.KeyVerbose,
}

// NewRootCmd creates the root command for the qlabcsv CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qlabcsv",
		Short: "Compile a CSV cue plot into QLab cues",
		Long: `qlabcsv reads a sound and lighting plot (CSV or XLSX) and compiles
each row into QLab cues: start cues, lighting MSC GO cues and X32 mixer
network cues, grouped per row.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "Path to config file (env: QLABCSV_CONFIG)")
	flags.StringVarP(&templateFlag, "template", "t", "", "Cue template: simple, x32 (default: detect from headers)")
	flags.IntVar(&patchFlag, "patch", 1, "QLab network patch for X32 cues")
	flags.StringVar(&logFileFlag, "log-file", "", "Add a cue to each row group that appends to this file")
	flags.StringVar(&sheetFlag, "sheet", "", "Worksheet to read from .xlsx plots (default: first)")
	flags.StringVarP(&outputFlag, "output", "o", "table", "Output format: table, json, yaml, cue, plan")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewConvertCmd())
	rootCmd.AddCommand(NewCheckCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loader := config.NewLoader()
	for name, key := range flagKeys {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return NewExitError(err, ExitUsageError)
		}
	}

	cfg, err := loader.Load(configFlag)
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}
	resolvedConfig = cfg

	output.SetupLogging(cmd.ErrOrStderr(), cfg.Verbose)

	output.Debug("initializing CLI",
		"template", cfg.Template,
		"patch", cfg.Patch,
		"log_file", cfg.LogFile,
		"sheet", cfg.Sheet,
		"output", cfg.Output,
	)

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.Config {
	return resolvedConfig
}
