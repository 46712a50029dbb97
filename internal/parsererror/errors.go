// Package parsererror defines the typed errors used by the extraction
// pipeline. Run-level errors (missing or undecodable input) abort the
// run; row-level errors are absorbed into the statistics counters.
package parsererror

import (
	"fmt"
	"strings"
)

// FileNotFoundError indicates the input file does not exist. This is a
// fatal, run-level condition: no rows are processed and no artifacts
// are written.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// UndecodableError indicates that none of the candidate text encodings
// could decode the input file. Fatal for the run.
type UndecodableError struct {
	Path  string
	Tried []string
}

func (e *UndecodableError) Error() string {
	return fmt.Sprintf("unable to decode %s with any of the tried encodings: %s",
		e.Path, strings.Join(e.Tried, ", "))
}

// AmountError indicates that an amount string was present but could
// not be parsed as a number. Row-level and non-fatal: the row is
// classified as an error and processing continues.
type AmountError struct {
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("failed to parse amount '%s': %v", e.Value, e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}
