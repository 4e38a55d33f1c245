// Package report renders an import report for the CLI in text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"walnutbook/csv-import/internal/models"
)

// FileReport pairs one source file with its import report. A directory
// import produces one per file so row indices stay attributable.
type FileReport struct {
	File   string               `json:"file"`
	Report *models.ImportReport `json:"report"`
}

// RenderAll formats one report per source file in the requested format.
func RenderAll(reports []FileReport, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return append(data, '\n'), nil
	case "text":
		var b strings.Builder
		for i, fr := range reports {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s\n", fr.File)
			b.Write(renderText(fr.Report))
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Render formats the report in the requested format (text or json).
func Render(r *models.ImportReport, format string) ([]byte, error) {
	switch format {
	case "json":
		return renderJSON(r)
	case "text":
		return renderText(r), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderJSON(r *models.ImportReport) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

func renderText(r *models.ImportReport) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported:           %d\n", r.ImportedCount)
	fmt.Fprintf(&b, "Duplicates skipped: %d\n", r.DuplicatesSkipped)
	fmt.Fprintf(&b, "Transfer conflicts: %d\n", r.TransferConflicts)
	if len(r.RowErrors) > 0 {
		fmt.Fprintf(&b, "Row errors:         %d\n", len(r.RowErrors))
		for _, re := range r.RowErrors {
			fmt.Fprintf(&b, "  line %d: %s\n", re.Row, re.Reason)
		}
	}
	return []byte(b.String())
}
