// Package extractor turns raw CSV rows into classified outcomes using
// a fixed column schema: identifier, currency (with default) and a
// normalized amount per row.
package extractor

import (
	"strings"

	"github.com/yixiangWangTrv/deposit-export/internal/amountutils"
	"github.com/yixiangWangTrv/deposit-export/internal/logging"
	"github.com/yixiangWangTrv/deposit-export/internal/models"
)

// Schema describes the shape of the input table. Column indices are
// zero-based positions in the raw row.
type Schema struct {
	// SkipRows is the number of leading header/metadata rows that are
	// unconditionally excluded.
	SkipRows int

	// MinColumns is the minimum field count for a data row; shorter
	// rows are skipped.
	MinColumns int

	HotelIDColumn  int
	CurrencyColumn int
	AmountColumn   int

	// DefaultCurrency is used when the currency column is absent or
	// blank. The identifier has no such default: a blank identifier
	// skips the row.
	DefaultCurrency string
}

// DefaultSchema returns the layout of the deposit write-off export:
// 4 metadata rows, at least 9 columns, hotel id in column 3, currency
// in column 7 defaulting to IDR, amount in column 8.
func DefaultSchema() Schema {
	return Schema{
		SkipRows:        4,
		MinColumns:      9,
		HotelIDColumn:   3,
		CurrencyColumn:  7,
		AmountColumn:    8,
		DefaultCurrency: "IDR",
	}
}

// Extract classifies every raw row into an Outcome. Rows are
// independent: classification only depends on the row itself and the
// schema, so the same input always yields the same outcome sequence.
func Extract(rows [][]string, schema Schema, logger logging.Logger) []models.Outcome {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	outcomes := make([]models.Outcome, 0, len(rows))
	for i, row := range rows {
		outcomes = append(outcomes, classify(i, row, schema, logger))
	}
	return outcomes
}

// classify applies the per-row policy in order: header skip, column
// count check, field extraction, amount normalization.
func classify(index int, row []string, schema Schema, logger logging.Logger) models.Outcome {
	if index < schema.SkipRows {
		return models.Header()
	}

	if len(row) < schema.MinColumns {
		return models.Skipped("insufficient columns")
	}

	hotelID := fieldAt(row, schema.HotelIDColumn)
	amountStr := fieldAt(row, schema.AmountColumn)
	if hotelID == "" || amountStr == "" {
		return models.Skipped("empty hotel id or amount")
	}

	amount, err := amountutils.Parse(amountStr)
	if err != nil {
		logger.WithError(err).Warn("Failed to parse amount",
			logging.Field{Key: "row", Value: index},
			logging.Field{Key: "amount", Value: amountStr})
		return models.Errored(err.Error())
	}

	currency := fieldAt(row, schema.CurrencyColumn)
	if currency == "" {
		currency = schema.DefaultCurrency
	}

	return models.Processed(models.Record{
		HotelID:  hotelID,
		Currency: currency,
		Amount:   amount,
	})
}

// fieldAt returns the trimmed field at the given column, or "" when
// the row is too short.
func fieldAt(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}
