// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yixiangWangTrv/deposit-export/internal/amountutils"
	"github.com/yixiangWangTrv/deposit-export/internal/config"
	"github.com/yixiangWangTrv/deposit-export/internal/fileutils"
	"github.com/yixiangWangTrv/deposit-export/internal/logging"
)

// CommonFlags holds the flags shared by the export and stats commands.
type CommonFlags struct {
	// Input is an explicit input file path. When empty, the
	// configured filename is resolved against the documents
	// directory.
	Input string

	// Output is the directory the artifacts are written to. Empty
	// means the input file's directory.
	Output string

	// ShowAll prints the full record list without prompting.
	ShowAll bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated before
	// any command runs.
	Cfg *config.Config

	// SharedFlags are the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "deposit-export",
		Short: "Extract hotel deposit records from a CSV export.",
		Long: `deposit-export reads a hotel deposit write-off CSV export, normalizes
the amounts and writes the extracted records to text and JSON artifacts
together with processing statistics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to deposit-export!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Propagate the configured logger to the utility packages
			amountutils.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (default: configured filename in the documents directory)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory for artifacts (default: input file's directory)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.ShowAll, "show-all", false, "Print the full record list without prompting")
}

// GetLogger returns the shared logger wrapped in the logging adapter.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// ResolveInput returns the input path: the --input flag when given,
// otherwise the configured filename inside the documents directory.
func ResolveInput() string {
	if SharedFlags.Input != "" {
		return SharedFlags.Input
	}

	dir := Cfg.Export.DocumentsDir
	if dir == "" {
		var err error
		dir, err = fileutils.DocumentsDir()
		if err != nil {
			Log.Fatalf("Failed to resolve documents directory: %v", err)
		}
	}
	return filepath.Join(dir, Cfg.Export.Filename)
}
