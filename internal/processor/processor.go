// Package processor orchestrates one extraction run: locate and read
// the input file, pick a text encoding, parse the CSV and fold the
// classified rows into records and statistics.
package processor

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/yixiangWangTrv/deposit-export/internal/encodingutils"
	"github.com/yixiangWangTrv/deposit-export/internal/extractor"
	"github.com/yixiangWangTrv/deposit-export/internal/fileutils"
	"github.com/yixiangWangTrv/deposit-export/internal/logging"
	"github.com/yixiangWangTrv/deposit-export/internal/models"
	"github.com/yixiangWangTrv/deposit-export/internal/parsererror"
)

// Result is everything one completed run produced.
type Result struct {
	Records  []models.Record
	Stats    models.ProcessingStats
	Encoding string
	Source   string
	ModTime  time.Time
}

// Processor runs the extraction pipeline. A zero schema is replaced by
// the default deposit export layout.
type Processor struct {
	schema extractor.Schema
	logger logging.Logger
}

// New creates a Processor with the given schema and logger.
func New(schema extractor.Schema, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{schema: schema, logger: logger}
}

// Run executes one full pass over the input file. A missing file, an
// undecodable file and a CSV syntax error are all fatal: no result is
// returned and nothing is written. Row-level conditions only show up
// in the result's statistics.
func (p *Processor) Run(path string) (*Result, error) {
	if !fileutils.FileExists(path) {
		return nil, &parsererror.FileNotFoundError{Path: path}
	}

	p.logger.Info("Processing file", logging.Field{Key: "path", Value: path})

	modTime, err := fileutils.ModTime(path)
	if err != nil {
		return nil, err
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, encoding, err := encodingutils.DecodeBytes(data, path)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Successfully decoded file",
		logging.Field{Key: "encoding", Value: encoding})

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // allow variable number of fields
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV rows: %w", err)
	}

	outcomes := extractor.Extract(rows, p.schema, p.logger)
	stats := models.FoldStats(outcomes)

	p.logger.Info("Extraction pass completed",
		logging.Field{Key: "total_rows", Value: stats.TotalRows},
		logging.Field{Key: "processed", Value: stats.Processed},
		logging.Field{Key: "skipped", Value: stats.Skipped},
		logging.Field{Key: "errors", Value: stats.Errors})

	return &Result{
		Records:  models.Records(outcomes),
		Stats:    stats,
		Encoding: encoding,
		Source:   path,
		ModTime:  modTime,
	}, nil
}
