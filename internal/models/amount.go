package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currency markers that banks embed directly in amount columns
var currencyMarkers = []string{"CHF", "EUR", "USD", "CAD", "$", "€", "£"}

// ParseAmount converts a raw amount cell into a decimal value.
// It strips currency markers and thousand separators and treats a
// parenthesized amount, e.g. "(45.00)", as negative.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	// Accounting notation: (45.00) means -45.00
	negative := false
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		negative = true
		amount = amount[1 : len(amount)-1]
	}

	for _, marker := range currencyMarkers {
		amount = strings.ReplaceAll(amount, marker, "")
	}
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")

	// Disambiguate separators. With both present, whichever comes last is
	// the decimal point: "1,234.56" drops commas, "1.234,56" drops dots.
	// With a comma alone, a final group of at most two digits marks a
	// decimal comma ("1234,56"); otherwise it separates thousands ("1,234").
	if strings.Contains(amount, ",") && strings.Contains(amount, ".") {
		if strings.LastIndex(amount, ".") < strings.LastIndex(amount, ",") {
			amount = strings.ReplaceAll(amount, ".", "")
			amount = strings.ReplaceAll(amount, ",", ".")
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	} else if strings.Contains(amount, ",") {
		parts := strings.Split(amount, ",")
		if len(parts[len(parts)-1]) <= 2 {
			amount = strings.ReplaceAll(amount, ",", ".")
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if negative {
		dec = dec.Neg()
	}
	return dec, nil
}
