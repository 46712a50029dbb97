// Package stats handles the dry-run statistics command
package stats

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yixiangWangTrv/deposit-export/cmd/root"
	"github.com/yixiangWangTrv/deposit-export/internal/processor"
	"github.com/yixiangWangTrv/deposit-export/internal/report"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Run the extraction pass without writing artifacts",
	Long: `Run the same extraction pass as the export command and print the
statistics summary and record preview, but write no files.`,
	Run: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
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
	printer.PrintPreview(result.Records)
	printer.ConfirmFull(result.Records, root.SharedFlags.ShowAll)
}
