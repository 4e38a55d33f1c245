// Package fieldmap infers which CSV column plays which semantic role.
package fieldmap

import (
	"fmt"
	"strings"
)

// Mapping holds the resolved column index for each role. An index of -1
// means the role is absent. Either Amount or the Debit/Credit pair must be
// present; when the pair is used, the row amount is credit minus debit.
type Mapping struct {
	Date     int
	Amount   int
	Debit    int
	Credit   int
	Payee    int
	Category int
	Notes    int
}

// HasSplitAmount reports whether the amount comes from a debit/credit pair
// instead of a single column.
func (m *Mapping) HasSplitAmount() bool {
	return m.Amount < 0 && m.Debit >= 0 && m.Credit >= 0
}

// HasCategory reports whether a category column was mapped.
func (m *Mapping) HasCategory() bool { return m.Category >= 0 }

// HasNotes reports whether a notes column was mapped.
func (m *Mapping) HasNotes() bool { return m.Notes >= 0 }

var payeeExact = []string{"description", "payee", "memo", "details", "narrative"}

// Resolve assigns semantic roles to header columns. Resolution order per
// role is fixed; the first match wins. Date and amount (or debit/credit)
// must both resolve or the whole import is rejected before any row is
// processed.
func Resolve(header []string) (*Mapping, error) {
	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := &Mapping{Date: -1, Amount: -1, Debit: -1, Credit: -1, Payee: -1, Category: -1, Notes: -1}

	m.Date = resolveDate(fields)
	resolveAmount(m, fields)
	m.Payee = resolvePayee(fields)
	m.Category = firstMatch(fields, func(f string) bool {
		return f == "category" || strings.Contains(f, "category")
	})
	m.Notes = resolveNotes(fields, m.Payee)

	if m.Date < 0 {
		return nil, fmt.Errorf("no date column found in header")
	}
	if m.Amount < 0 && !m.HasSplitAmount() {
		return nil, fmt.Errorf("no amount or debit/credit columns found in header")
	}
	return m, nil
}

// resolveDate prefers a bare "date" column; the substring tier also covers
// the multi-word variants ("transaction date", "date posted").
func resolveDate(fields []string) int {
	if i := firstMatch(fields, func(f string) bool { return f == "date" }); i >= 0 {
		return i
	}
	return firstMatch(fields, func(f string) bool {
		return strings.Contains(f, "date") && !strings.Contains(f, "amount")
	})
}

func resolveAmount(m *Mapping, fields []string) {
	if i := firstMatch(fields, func(f string) bool { return f == "amount" }); i >= 0 {
		m.Amount = i
		return
	}
	if i := firstMatch(fields, func(f string) bool { return strings.Contains(f, "amount") }); i >= 0 {
		m.Amount = i
		return
	}
	debit := firstMatch(fields, func(f string) bool { return f == "debit" })
	credit := firstMatch(fields, func(f string) bool { return f == "credit" })
	if debit >= 0 && credit >= 0 {
		m.Debit = debit
		m.Credit = credit
	}
}

func resolvePayee(fields []string) int {
	if i := firstMatch(fields, func(f string) bool {
		for _, kw := range payeeExact {
			if f == kw {
				return true
			}
		}
		return false
	}); i >= 0 {
		return i
	}
	if i := firstMatch(fields, func(f string) bool {
		return strings.Contains(f, "description") || strings.Contains(f, "payee")
	}); i >= 0 {
		return i
	}
	// Last resort: assume the first column carries the counterparty.
	if len(fields) > 0 {
		return 0
	}
	return -1
}

func resolveNotes(fields []string, payee int) int {
	return firstMatch(fields, func(f string) bool {
		if !strings.Contains(f, "notes") && !strings.Contains(f, "memo") {
			return false
		}
		return true
	}, payee)
}

// firstMatch returns the index of the first field satisfying the predicate,
// skipping any excluded indices (a column already claimed by another role).
func firstMatch(fields []string, pred func(string) bool, exclude ...int) int {
	for i, f := range fields {
		if contains(exclude, i) {
			continue
		}
		if pred(f) {
			return i
		}
	}
	return -1
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
