// Package models defines the data types shared across the extraction
// pipeline: the normalized Record, the per-row Outcome classification
// and the ProcessingStats counters.
package models

import (
	"github.com/shopspring/decimal"
)

// Record is one normalized output unit extracted from a data row.
// Every Record carries a non-empty hotel identifier, a non-empty
// currency code and a parsed amount.
type Record struct {
	HotelID  string          `json:"hotelId"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Status classifies what happened to a single raw row.
type Status string

const (
	// StatusHeader marks one of the leading metadata rows that are
	// unconditionally excluded and only counted in TotalRows.
	StatusHeader Status = "header"

	// StatusProcessed marks a row that produced a Record.
	StatusProcessed Status = "processed"

	// StatusSkipped marks a row dropped for structural reasons:
	// too few columns, empty identifier or empty amount string.
	StatusSkipped Status = "skipped"

	// StatusErrored marks a row whose amount string was present but
	// not parseable as a number.
	StatusErrored Status = "error"
)

// Outcome is the tagged result of classifying one raw row. Record is
// set only for StatusProcessed; Reason only for skipped/errored rows.
type Outcome struct {
	Status Status
	Record *Record
	Reason string
}

// Header returns the outcome for an excluded leading row.
func Header() Outcome {
	return Outcome{Status: StatusHeader}
}

// Processed returns the outcome for a row that produced a record.
func Processed(r Record) Outcome {
	return Outcome{Status: StatusProcessed, Record: &r}
}

// Skipped returns the outcome for a structurally rejected row.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Errored returns the outcome for a row with an unparseable amount.
func Errored(reason string) Outcome {
	return Outcome{Status: StatusErrored, Reason: reason}
}

// ProcessingStats holds the per-run row counters. Counters are only
// ever incremented. TotalRows counts every raw row, including the
// excluded header rows, so after a complete run
// TotalRows == headers + Processed + Skipped + Errors.
type ProcessingStats struct {
	TotalRows int `json:"total_rows"`
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Count increments the counters for one classified row.
func (s *ProcessingStats) Count(status Status) {
	s.TotalRows++
	switch status {
	case StatusProcessed:
		s.Processed++
	case StatusSkipped:
		s.Skipped++
	case StatusErrored:
		s.Errors++
	}
}

// FoldStats aggregates outcomes into ProcessingStats. It is a pure
// fold: the same outcome sequence always yields the same stats.
func FoldStats(outcomes []Outcome) ProcessingStats {
	var stats ProcessingStats
	for _, o := range outcomes {
		stats.Count(o.Status)
	}
	return stats
}

// Records collects the produced records from an outcome sequence,
// preserving row order.
func Records(outcomes []Outcome) []Record {
	var records []Record
	for _, o := range outcomes {
		if o.Status == StatusProcessed && o.Record != nil {
			records = append(records, *o.Record)
		}
	}
	return records
}
