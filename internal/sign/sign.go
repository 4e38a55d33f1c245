// Package sign converts a raw CSV amount into a signed ledger amount and a
// transaction type, honoring the account's class and configured convention.
//
// Different card issuers emit opposite polarity for the same semantic event,
// so the mapping cannot be inferred from the data; it is explicit per-account
// configuration.
package sign

import (
	"github.com/shopspring/decimal"

	"walnutbook/csv-import/internal/models"
)

// Resolve classifies a raw amount for the given account and returns the
// signed ledger amount plus its transaction type. Income amounts come back
// positive, expense amounts negative.
//
// For non-credit accounts the raw sign is authoritative under both
// conventions: negative means money out. Credit accounts invert: under the
// standard convention a negative raw amount is a balance-reducing payment
// (income), and the reversed convention flips that for issuers with the
// opposite polarity.
func Resolve(raw decimal.Decimal, account *models.Account) (decimal.Decimal, models.TransactionType) {
	negative := raw.IsNegative()

	var txType models.TransactionType
	if account.IsCredit() {
		if account.EffectiveSignConvention() == models.SignReversed {
			if negative {
				txType = models.TypeExpense
			} else {
				txType = models.TypeIncome
			}
		} else {
			if negative {
				txType = models.TypeIncome
			} else {
				txType = models.TypeExpense
			}
		}
	} else {
		if negative {
			txType = models.TypeExpense
		} else {
			txType = models.TypeIncome
		}
	}

	amount := raw.Abs()
	if txType == models.TypeExpense {
		amount = amount.Neg()
	}
	return amount, txType
}
