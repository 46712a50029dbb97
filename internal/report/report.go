// Package report prints the per-run console output: the statistics
// summary, a short record preview, the written artifact list and the
// interactive full-list prompt.
package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yixiangWangTrv/deposit-export/internal/models"
	"github.com/yixiangWangTrv/deposit-export/internal/writer"
)

const rule = "============================================================"

// Printer writes the console report. Input and output are injectable
// so the interactive prompt can be driven from tests.
type Printer struct {
	out io.Writer
	in  io.Reader

	// PreviewLimit caps the number of records shown in the preview.
	PreviewLimit int
}

// NewPrinter creates a Printer writing to out and reading prompt
// answers from in.
func NewPrinter(out io.Writer, in io.Reader) *Printer {
	return &Printer{out: out, in: in, PreviewLimit: 5}
}

// PrintStats prints the statistics summary block.
func (p *Printer) PrintStats(stats models.ProcessingStats) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, "Processing Statistics:")
	fmt.Fprintf(p.out, "   Total rows: %d\n", stats.TotalRows)
	fmt.Fprintf(p.out, "   Successfully processed: %d\n", stats.Processed)
	fmt.Fprintf(p.out, "   Skipped rows: %d\n", stats.Skipped)
	fmt.Fprintf(p.out, "   Error rows: %d\n", stats.Errors)
	fmt.Fprintln(p.out, rule)
}

// PrintPreview prints up to PreviewLimit records, one per numbered
// line, followed by a count of the remainder.
func (p *Printer) PrintPreview(records []models.Record) {
	fmt.Fprintf(p.out, "\nResults Preview (first %d lines):\n", p.PreviewLimit)
	fmt.Fprintln(p.out, strings.Repeat("-", 60))

	limit := p.PreviewLimit
	if limit > len(records) {
		limit = len(records)
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(p.out, "%d. %s,\n", i+1, writer.FormatRecord(records[i]))
	}

	if len(records) > p.PreviewLimit {
		fmt.Fprintf(p.out, "... plus %d more rows\n", len(records)-p.PreviewLimit)
	}
}

// PrintArtifacts lists the written export files by base name.
func (p *Printer) PrintArtifacts(paths []string) {
	fmt.Fprintln(p.out, "\nExported files:")
	for _, path := range paths {
		fmt.Fprintf(p.out, "   %s\n", filepath.Base(path))
	}
}

// ConfirmFull asks whether to print the full record list and, on a
// "y" answer, prints it framed by rules. When force is true the
// prompt is skipped and the list printed unconditionally.
func (p *Printer) ConfirmFull(records []models.Record, force bool) {
	if len(records) == 0 {
		return
	}

	if !force {
		fmt.Fprint(p.out, "\nShow full results? (y/n): ")
		scanner := bufio.NewScanner(p.in)
		if !scanner.Scan() {
			return
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" {
			return
		}
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, writer.FormatJoined(records))
	fmt.Fprintln(p.out, rule)
}
