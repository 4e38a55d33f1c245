// Package detect handles the detect command: previewing how a CSV file
// will be interpreted without importing anything.
package detect

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"walnutbook/csv-import/cmd/root"
	"walnutbook/csv-import/internal/fieldmap"
	"walnutbook/csv-import/internal/sniffer"
)

// Cmd represents the detect command.
var Cmd = &cobra.Command{
	Use:   "detect <file.csv>",
	Short: "Show delimiter, header and column roles detected for a CSV file",
	Long: `Detect runs only the shape-detection stage of the import pipeline and
prints the delimiter, header line and inferred column roles. Use it to
check how a new bank's export will be read before importing it.`,
	Args: cobra.ExactArgs(1),
	Run:  detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0]) // #nosec G304 -- CLI tool inspects user-provided files
	if err != nil {
		root.Log.Fatalf("Failed to read file: %v", err)
	}

	detection := sniffer.Detect(string(data), root.Cfg.Import.HeaderScanLines)
	fmt.Printf("Delimiter:   %s\n", delimiterName(detection.Delimiter))
	fmt.Printf("Header line: %d\n", detection.HeaderLine)
	if detection.Fallback {
		fmt.Println("Detection:   fallback (no header scored above threshold)")
	}
	fmt.Printf("Columns:     %v\n", detection.Header)

	mapping, err := fieldmap.Resolve(detection.Header)
	if err != nil {
		root.Log.Fatalf("Field mapping failed: %v", err)
	}

	fmt.Printf("Date column:   %s\n", columnLabel(detection.Header, mapping.Date))
	if mapping.HasSplitAmount() {
		fmt.Printf("Debit column:  %s\n", columnLabel(detection.Header, mapping.Debit))
		fmt.Printf("Credit column: %s\n", columnLabel(detection.Header, mapping.Credit))
	} else {
		fmt.Printf("Amount column: %s\n", columnLabel(detection.Header, mapping.Amount))
	}
	fmt.Printf("Payee column:  %s\n", columnLabel(detection.Header, mapping.Payee))
	if mapping.HasCategory() {
		fmt.Printf("Category column: %s\n", columnLabel(detection.Header, mapping.Category))
	}
	if mapping.HasNotes() {
		fmt.Printf("Notes column:  %s\n", columnLabel(detection.Header, mapping.Notes))
	}
}

func delimiterName(d rune) string {
	switch d {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return strconv.QuoteRune(d)
	}
}

func columnLabel(header []string, index int) string {
	if index < 0 || index >= len(header) {
		return "(none)"
	}
	return fmt.Sprintf("%d (%s)", index, header[index])
}
