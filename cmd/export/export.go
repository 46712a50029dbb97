// Package export handles the full extraction-and-export run
package export

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yixiangWangTrv/deposit-export/cmd/root"
	"github.com/yixiangWangTrv/deposit-export/internal/processor"
	"github.com/yixiangWangTrv/deposit-export/internal/report"
	"github.com/yixiangWangTrv/deposit-export/internal/writer"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Extract records and write the export artifacts",
	Long: `Extract deposit records from the input CSV and write the three export
artifacts (.txt, .json and _lines.txt) named after the input file's
modification time.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	inputFile := root.ResolveInput()

	p := processor.New(root.Cfg.Schema(), logger)
	result, err := p.Run(inputFile)
	if err != nil {
		logger.Fatalf("Failed to process file: %v", err)
	}

	printer := report.NewPrinter(os.Stdout, os.Stdin)
	printer.PreviewLimit = root.Cfg.Export.PreviewLimit
	printer.PrintStats(result.Stats)

	if len(result.Records) == 0 {
		logger.Warn("No data to export")
		return
	}

	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = filepath.Dir(result.Source)
	}

	paths, err := writer.WriteArtifacts(result.Records, outputDir, result.ModTime)
	if err != nil {
		logger.Fatalf("Failed to write artifacts: %v", err)
	}

	printer.PrintPreview(result.Records)
	printer.PrintArtifacts(paths)
	printer.ConfirmFull(result.Records, root.SharedFlags.ShowAll)

	logger.Info("Processing completed!")
}
