// Package importcmd handles the import command: turning a bank CSV export
// into ledger transactions plus an import report.
package importcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"walnutbook/csv-import/cmd/root"
	"walnutbook/csv-import/internal/fileutils"
	"walnutbook/csv-import/internal/importer"
	"walnutbook/csv-import/internal/models"
	"walnutbook/csv-import/internal/report"
	"walnutbook/csv-import/internal/store"
)

var (
	accountID    int64
	dryRun       bool
	keepDupes    bool
	reportFormat string
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import <file.csv | directory>",
	Short: "Import a bank CSV export into the ledger",
	Long: `Import parses a bank CSV export, normalizes each row into a ledger
transaction for the selected account, filters duplicates against the
existing history, and appends the result. A directory argument imports
every .csv file it contains. Use --dry-run to preview the import report
without writing anything.`,
	Args: cobra.ExactArgs(1),
	Run:  importFunc,
}

func init() {
	Cmd.Flags().Int64VarP(&accountID, "account", "a", 0, "Target account id (required)")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without persisting anything")
	Cmd.Flags().BoolVar(&keepDupes, "keep-duplicates", false, "Disable duplicate filtering for this run")
	Cmd.Flags().StringVar(&reportFormat, "format", "text", "Report output format (text or json)")
	_ = Cmd.MarkFlagRequired("account")
}

func importFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	ledger := root.Store()

	imp := importer.New(ledger, ledger, ledger, root.Logger())
	session := importer.Session{
		AccountID:           accountID,
		RemoveDuplicates:    root.Cfg.Import.RemoveDuplicates && !keepDupes,
		HeaderScanLines:     root.Cfg.Import.HeaderScanLines,
		DuplicateWindowDays: root.Cfg.Import.DuplicateWindowDays,
		PaymentKeywords:     root.Cfg.Import.PaymentKeywords,
	}

	paths := []string{path}
	if fileutils.DirectoryExists(path) {
		files, err := fileutils.ListFilesWithExtension(path, ".csv")
		if err != nil {
			root.Log.Fatalf("Failed to scan directory: %v", err)
		}
		if len(files) == 0 {
			root.Log.Fatalf("No .csv files found in %s", path)
		}
		paths = files
	}

	// Row indices are per file, so reports stay separate per source file.
	fileReports := make([]report.FileReport, 0, len(paths))
	for _, p := range paths {
		fileReports = append(fileReports, report.FileReport{
			File:   p,
			Report: importOne(imp, ledger, p, session),
		})
	}

	var rendered []byte
	var err error
	if len(fileReports) == 1 {
		rendered, err = report.Render(fileReports[0].Report, reportFormat)
	} else {
		rendered, err = report.RenderAll(fileReports, reportFormat)
	}
	if err != nil {
		root.Log.Fatalf("Failed to render report: %v", err)
	}
	fmt.Print(string(rendered))

	if dryRun {
		root.Log.Info("Dry run: nothing was persisted")
	}
}

func importOne(imp *importer.Importer, ledger *store.LedgerStore, path string, session importer.Session) *models.ImportReport {
	batch, importReport, err := imp.ImportFile(path, session)
	if err != nil {
		root.Log.Fatalf("Import of %s failed: %v", path, err)
	}
	if !dryRun && len(batch) > 0 {
		if err := ledger.AppendTransactions(batch); err != nil {
			root.Log.Fatalf("Failed to persist transactions: %v", err)
		}
	}
	return importReport
}
