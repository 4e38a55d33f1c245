// Package importerror defines the error types produced by the import pipeline.
// Fatal errors abort the whole import before any row is processed; row errors
// are collected in the import report and never stop the batch.
package importerror

import "fmt"

// FormatError represents a fatal whole-import failure: the file cannot be
// processed at all (wrong extension, no usable header, unresolvable columns).
type FormatError struct {
	FilePath string
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot import %s: %s", e.FilePath, e.Reason)
}

// RowError represents a non-fatal failure for a single source row.
type RowError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason())
}

// Reason is the row-independent description, used as the report entry text
// alongside the row index.
func (e *RowError) Reason() string {
	if e.Value != "" {
		return fmt.Sprintf("%v (%s=%q)", e.Err, e.Field, e.Value)
	}
	return e.Err.Error()
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input that failed a precondition check
// before parsing began.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
