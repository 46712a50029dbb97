// Package amountutils normalizes monetary amount strings as they
// appear in the deposit export: comma thousands separators, embedded
// whitespace and accounting-style parenthetical negatives.
package amountutils

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yixiangWangTrv/deposit-export/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse converts an amount string to a decimal value.
//
// Commas and whitespace are stripped, a cleaned string wrapped in
// parentheses is treated as a negative ("(500)" -> -500), then the
// result is parsed literally: an exact integer parse first, a decimal
// parse as fallback. No scaling is ever applied; "1,234" is 1234.
//
// Empty, absent and whitespace-only input fails, as does anything that
// survives cleaning but is not a number. Failures are reported as
// *parsererror.AmountError and never panic.
func Parse(amountStr string) (decimal.Decimal, error) {
	cleaned := clean(amountStr)
	if cleaned == "" {
		return decimal.Zero, &parsererror.AmountError{
			Value: amountStr,
			Err:   errEmpty,
		}
	}

	// Accounting negative notation: (500) means -500.
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	// Integers stay integers; no float promotion.
	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return decimal.NewFromInt(n), nil
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.WithField("amount", amountStr).Warnf("Amount conversion error: %v", err)
		return decimal.Zero, &parsererror.AmountError{
			Value: amountStr,
			Err:   err,
		}
	}

	return amount, nil
}

var errEmpty = errors.New("empty amount")

// clean removes comma thousands separators and all whitespace.
func clean(amountStr string) string {
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, amountStr)
}
