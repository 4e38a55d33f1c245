// Package importer orchestrates one CSV import run: shape detection, field
// mapping, per-row normalization, sign resolution and duplicate filtering.
// It never persists anything itself; the caller owns the final append.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"walnutbook/csv-import/internal/dateutils"
	"walnutbook/csv-import/internal/dedup"
	"walnutbook/csv-import/internal/fieldmap"
	"walnutbook/csv-import/internal/importerror"
	"walnutbook/csv-import/internal/logging"
	"walnutbook/csv-import/internal/models"
	"walnutbook/csv-import/internal/sign"
	"walnutbook/csv-import/internal/sniffer"

	"github.com/shopspring/decimal"
)

// AccountLookup resolves the target account's class and sign convention.
type AccountLookup interface {
	GetAccount(id int64) (*models.Account, error)
}

// CategoryResolver maps free-text category names to category ids.
type CategoryResolver interface {
	ResolveCategory(name string) (*int64, error)
}

// TransactionReader supplies the existing history for duplicate detection.
type TransactionReader interface {
	LoadTransactions() ([]models.Transaction, error)
}

// Session carries the per-run settings through the pipeline. Threading an
// explicit value keeps repeated or concurrent runs from interfering.
type Session struct {
	AccountID           int64
	RemoveDuplicates    bool
	HeaderScanLines     int
	DuplicateWindowDays int
	PaymentKeywords     []string
}

// Importer wires the pipeline stages to the external collaborators.
type Importer struct {
	accounts     AccountLookup
	categories   CategoryResolver
	transactions TransactionReader
	logger       logging.Logger
}

// New creates an Importer backed by the given collaborators.
func New(accounts AccountLookup, categories CategoryResolver, transactions TransactionReader, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
		logger:       logger,
	}
}

// ImportFile reads and imports a CSV file. Only the .csv extension is
// accepted; anything else is rejected before parsing begins.
func (imp *Importer) ImportFile(path string, session Session) ([]models.Transaction, *models.ImportReport, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		return nil, nil, &importerror.ValidationError{
			FilePath: path,
			Reason:   fmt.Sprintf("unsupported file extension %q, only .csv is accepted", ext),
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool imports user-provided files
	if err != nil {
		return nil, nil, fmt.Errorf("error reading import file: %w", err)
	}
	return imp.Import(string(data), path, session)
}

// Import runs the pipeline over raw file text. Rows are processed strictly
// in file order so row-index error reporting stays deterministic. It returns
// the filtered batch and the import report; fatal errors abort before any
// row is processed and produce no report.
func (imp *Importer) Import(text, name string, session Session) ([]models.Transaction, *models.ImportReport, error) {
	if session.AccountID == 0 {
		return nil, nil, &importerror.FormatError{FilePath: name, Reason: "no account selected"}
	}

	account, err := imp.accounts.GetAccount(session.AccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("error resolving account: %w", err)
	}

	detection := sniffer.Detect(text, session.HeaderScanLines)
	imp.logger.WithField(logging.FieldDelimiter, string(detection.Delimiter)).
		WithField(logging.FieldHeader, detection.HeaderLine).
		Debug("Detected file shape")

	mapping, err := fieldmap.Resolve(detection.Header)
	if err != nil {
		return nil, nil, &importerror.FormatError{FilePath: name, Reason: err.Error()}
	}

	report := &models.ImportReport{}
	var batch []models.Transaction

	for i := detection.HeaderLine + 1; i < len(detection.Lines); i++ {
		fields, _ := sniffer.SplitLine(detection.Lines[i], detection.Delimiter)
		tx, rowErr := imp.buildRow(fields, mapping, account)
		if rowErr != nil {
			rowErr.Row = i
			report.AddRowError(i, rowErr.Reason())
			imp.logger.WithError(rowErr).WithField(logging.FieldRow, i).Debug("Skipping row")
			continue
		}
		tx.AccountID = session.AccountID
		batch = append(batch, tx)
	}

	if session.RemoveDuplicates {
		existing, err := imp.transactions.LoadTransactions()
		if err != nil {
			return nil, nil, fmt.Errorf("error loading existing transactions: %w", err)
		}
		keywords := session.PaymentKeywords
		detector := dedup.NewDetector(existing, keywords, session.DuplicateWindowDays)
		result := detector.Filter(batch)
		batch = result.Kept
		report.DuplicatesSkipped = result.DuplicatesSkipped
		report.TransferConflicts = result.TransferConflicts
	}

	report.ImportedCount = len(batch)
	imp.logger.WithField(logging.FieldCount, report.ImportedCount).
		WithField(logging.FieldAccount, session.AccountID).
		Info("Import pass completed")
	return batch, report, nil
}

// buildRow turns one tokenized row into a transaction candidate. Any
// failure here is row-level: the row is reported and excluded, the batch
// continues. The caller stamps the row index onto the returned error.
func (imp *Importer) buildRow(fields []string, mapping *fieldmap.Mapping, account *models.Account) (models.Transaction, *importerror.RowError) {
	rawDate := fieldAt(fields, mapping.Date)
	date, err := dateutils.NormalizeToISO(rawDate)
	if err != nil {
		return models.Transaction{}, &importerror.RowError{
			Field: "date",
			Value: rawDate,
			Err:   fmt.Errorf("unparseable date: %w", err),
		}
	}

	raw, rowErr := extractAmount(fields, mapping)
	if rowErr != nil {
		return models.Transaction{}, rowErr
	}

	payee := strings.TrimSpace(fieldAt(fields, mapping.Payee))
	if payee == "" {
		return models.Transaction{}, &importerror.RowError{
			Field: "payee",
			Err:   fmt.Errorf("missing payee"),
		}
	}

	amount, txType := sign.Resolve(raw, account)

	tx := models.Transaction{
		Date:   date,
		Type:   txType,
		Amount: amount,
		Payee:  payee,
	}

	if mapping.HasNotes() {
		tx.Notes = strings.TrimSpace(fieldAt(fields, mapping.Notes))
	}

	if mapping.HasCategory() {
		name := strings.TrimSpace(fieldAt(fields, mapping.Category))
		if name != "" {
			id, err := imp.categories.ResolveCategory(name)
			if err != nil {
				imp.logger.WithError(err).WithField(logging.FieldCategory, name).
					Warn("Category lookup failed, leaving transaction uncategorized")
			} else {
				tx.CategoryID = id
			}
		}
	}

	return tx, nil
}

// extractAmount reads the raw amount, either from the single amount column
// or as credit minus debit when the export splits directions. A debit-only
// row therefore comes out negative, which the sign resolver reads as an
// expense.
func extractAmount(fields []string, mapping *fieldmap.Mapping) (decimal.Decimal, *importerror.RowError) {
	if !mapping.HasSplitAmount() {
		raw := fieldAt(fields, mapping.Amount)
		amount, err := models.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, &importerror.RowError{
				Field: "amount",
				Value: raw,
				Err:   fmt.Errorf("invalid amount: %w", err),
			}
		}
		return amount, nil
	}

	debitRaw := strings.TrimSpace(fieldAt(fields, mapping.Debit))
	creditRaw := strings.TrimSpace(fieldAt(fields, mapping.Credit))
	if debitRaw == "" && creditRaw == "" {
		return decimal.Zero, &importerror.RowError{
			Field: "amount",
			Err:   fmt.Errorf("invalid amount: both debit and credit are empty"),
		}
	}

	debit := decimal.Zero
	credit := decimal.Zero
	var err error
	if debitRaw != "" {
		if debit, err = models.ParseAmount(debitRaw); err != nil {
			return decimal.Zero, &importerror.RowError{
				Field: "debit",
				Value: debitRaw,
				Err:   fmt.Errorf("invalid debit amount: %w", err),
			}
		}
	}
	if creditRaw != "" {
		if credit, err = models.ParseAmount(creditRaw); err != nil {
			return decimal.Zero, &importerror.RowError{
				Field: "credit",
				Value: creditRaw,
				Err:   fmt.Errorf("invalid credit amount: %w", err),
			}
		}
	}
	return credit.Sub(debit), nil
}

// fieldAt returns the field at index or "" when the row is short.
func fieldAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return fields[index]
}
