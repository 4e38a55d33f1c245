package models

// RowError records a non-fatal failure for a single source row. Row indices
// refer to the original file so users can find the offending line.
type RowError struct {
	Row    int    `json:"rowIndex"`
	Reason string `json:"reason"`
}

// ImportReport is the aggregate outcome of one import run. It is created
// fresh per run and returned to the caller; this subsystem never persists it.
type ImportReport struct {
	ImportedCount     int        `json:"importedCount"`
	DuplicatesSkipped int        `json:"duplicatesSkipped"`
	TransferConflicts int        `json:"transferConflicts"`
	RowErrors         []RowError `json:"rowErrors"`
}

// AddRowError appends a row-level failure to the report.
func (r *ImportReport) AddRowError(row int, reason string) {
	r.RowErrors = append(r.RowErrors, RowError{Row: row, Reason: reason})
}
