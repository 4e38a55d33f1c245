// Package dedup decides whether candidate transactions already exist in the
// ledger. It combines an exact key match with a fuzzy, date-windowed match
// for recurring card payments, and flags collisions with existing transfers.
package dedup

import (
	"fmt"
	"strings"
	"time"

	"walnutbook/csv-import/internal/dateutils"
	"walnutbook/csv-import/internal/models"
)

// DefaultWindowDays is the calendar-day window for fuzzy payment matching.
// Recurring card-payment postings shift by a day or two between statement
// cycles; without the window every sync would re-import them.
const DefaultWindowDays = 2

// existingEntry caches the parsed date of a stored transaction so the fuzzy
// scan does not re-parse per candidate.
type existingEntry struct {
	date     time.Time
	absCents string
}

// Detector answers duplicate and conflict questions for one import run
// against a fixed snapshot of existing transactions.
type Detector struct {
	exactKeys    map[string]struct{}
	transferKeys map[string]struct{}
	entries      []existingEntry
	keywords     []string
	windowDays   int
}

// Result is the outcome of filtering a candidate batch.
type Result struct {
	Kept              []models.Transaction
	DuplicatesSkipped int
	TransferConflicts int
}

// NewDetector indexes the existing transactions for the matching strategies.
// keywords is the payment-keyword list used by the fuzzy strategy; an empty
// slice disables fuzzy matching entirely.
func NewDetector(existing []models.Transaction, keywords []string, windowDays int) *Detector {
	if windowDays < 0 {
		windowDays = DefaultWindowDays
	}

	d := &Detector{
		exactKeys:    make(map[string]struct{}, len(existing)),
		transferKeys: make(map[string]struct{}),
		keywords:     lowerAll(keywords),
		windowDays:   windowDays,
	}

	for _, tx := range existing {
		if tx.IsTransfer() {
			d.transferKeys[transferKey(tx.Date, tx.Amount.Abs().StringFixed(2))] = struct{}{}
		} else {
			d.exactKeys[exactKey(tx)] = struct{}{}
		}
		if date, err := time.Parse(dateutils.LayoutISO, tx.Date); err == nil {
			d.entries = append(d.entries, existingEntry{
				date:     date,
				absCents: tx.Amount.Abs().StringFixed(2),
			})
		}
	}
	return d
}

// IsExactDuplicate reports whether an existing ordinary transaction shares
// identical date, amount, type and payee with the candidate.
func (d *Detector) IsExactDuplicate(tx models.Transaction) bool {
	_, ok := d.exactKeys[exactKey(tx)]
	return ok
}

// IsFuzzyPaymentDuplicate applies the relaxed card-payment rule: when the
// payee looks like a recurring payment, any existing transaction with the
// same absolute amount within the date window counts as the same real-world
// event, regardless of its exact date or type.
func (d *Detector) IsFuzzyPaymentDuplicate(tx models.Transaction) bool {
	if !d.isPaymentPayee(tx.Payee) {
		return false
	}
	date, err := time.Parse(dateutils.LayoutISO, tx.Date)
	if err != nil {
		return false
	}
	absCents := tx.Amount.Abs().StringFixed(2)
	for _, entry := range d.entries {
		if entry.absCents != absCents {
			continue
		}
		if withinDays(date, entry.date, d.windowDays) {
			return true
		}
	}
	return false
}

// HasTransferConflict reports whether the candidate coincides in date and
// absolute amount with an existing transfer. Transfers appear on both sides
// of an account pair, so this is flagged rather than merged.
func (d *Detector) HasTransferConflict(tx models.Transaction) bool {
	_, ok := d.transferKeys[transferKey(tx.Date, tx.Amount.Abs().StringFixed(2))]
	return ok
}

// Filter runs both duplicate strategies over the batch in order and counts
// transfer conflicts on the survivors. Conflicts are informational; the
// transactions stay in the batch.
func (d *Detector) Filter(batch []models.Transaction) Result {
	result := Result{Kept: make([]models.Transaction, 0, len(batch))}
	for _, tx := range batch {
		if d.IsExactDuplicate(tx) || d.IsFuzzyPaymentDuplicate(tx) {
			result.DuplicatesSkipped++
			continue
		}
		if d.HasTransferConflict(tx) {
			result.TransferConflicts++
		}
		result.Kept = append(result.Kept, tx)
	}
	return result
}

func (d *Detector) isPaymentPayee(payee string) bool {
	p := strings.ToLower(payee)
	for _, kw := range d.keywords {
		if strings.Contains(p, kw) {
			return true
		}
	}
	return false
}

func exactKey(tx models.Transaction) string {
	return fmt.Sprintf("%s|%s|%s|%s", tx.Date, tx.Amount.StringFixed(2), tx.Type, tx.Payee)
}

func transferKey(date, absCents string) string {
	return date + "|" + absCents
}

func withinDays(a, b time.Time, days int) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(days)*24*time.Hour
}

func lowerAll(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strings.ToLower(x)
	}
	return out
}
