// Package writer serializes extracted records into the three export
// artifacts: a comma-and-newline joined text file, a JSON-array style
// file and a one-record-per-line file.
package writer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yixiangWangTrv/deposit-export/internal/fileutils"
	"github.com/yixiangWangTrv/deposit-export/internal/models"
)

// timestampLayout formats the input file's mtime into the artifact
// names, e.g. export_20250114_093045.txt.
const timestampLayout = "20060102_150405"

// FormatRecord renders one record as its structured-text literal:
// string fields quoted, amount unquoted. Integer amounts render
// without a decimal point, decimals keep their native precision.
func FormatRecord(r models.Record) string {
	return fmt.Sprintf(`{hotelId: "%s", currency: "%s", amount: %s}`,
		r.HotelID, r.Currency, r.Amount.String())
}

// FormatJoined renders the records joined with ",\n" and no trailing
// separator. This is both the .txt artifact body and the full-list
// console output.
func FormatJoined(records []models.Record) string {
	formatted := make([]string, len(records))
	for i, r := range records {
		formatted[i] = FormatRecord(r)
	}
	return strings.Join(formatted, ",\n")
}

// WriteArtifacts writes the three export files into dir, named after
// the input file's modification time. It returns the written paths in
// order (.txt, .json, _lines.txt). The caller is responsible for not
// calling this with zero records.
func WriteArtifacts(records []models.Record, dir string, modTime time.Time) ([]string, error) {
	timestamp := modTime.Format(timestampLayout)

	joined := FormatJoined(records)

	var lines strings.Builder
	for _, r := range records {
		lines.WriteString(FormatRecord(r))
		lines.WriteString(",\n")
	}

	artifacts := []struct {
		name    string
		content string
	}{
		{fmt.Sprintf("export_%s.txt", timestamp), joined},
		{fmt.Sprintf("export_%s.json", timestamp), "[\n" + joined + "\n]"},
		{fmt.Sprintf("export_%s_lines.txt", timestamp), lines.String()},
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.name)
		if err := fileutils.WriteFile(path, []byte(a.content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write artifact %s: %w", a.name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
