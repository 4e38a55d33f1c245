package sign_test

import (
	"testing"

	"walnutbook/csv-import/internal/models"
	"walnutbook/csv-import/internal/sign"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		account    models.Account
		wantType   models.TransactionType
		wantAmount string
	}{
		{
			name:       "checking negative is expense",
			raw:        "-12.50",
			account:    models.Account{Type: models.AccountTypeChecking},
			wantType:   models.TypeExpense,
			wantAmount: "-12.5",
		},
		{
			name:       "checking positive is income",
			raw:        "1500.00",
			account:    models.Account{Type: models.AccountTypeChecking},
			wantType:   models.TypeIncome,
			wantAmount: "1500",
		},
		{
			name:       "savings reversed convention is ignored for non-credit",
			raw:        "-12.50",
			account:    models.Account{Type: models.AccountTypeSavings, SignConvention: models.SignReversed},
			wantType:   models.TypeExpense,
			wantAmount: "-12.5",
		},
		{
			name:       "credit standard negative is a payment",
			raw:        "-30.00",
			account:    models.Account{Type: models.AccountTypeCredit, SignConvention: models.SignStandard},
			wantType:   models.TypeIncome,
			wantAmount: "30",
		},
		{
			name:       "credit standard positive is a charge",
			raw:        "30.00",
			account:    models.Account{Type: models.AccountTypeCredit, SignConvention: models.SignStandard},
			wantType:   models.TypeExpense,
			wantAmount: "-30",
		},
		{
			name:       "credit reversed negative is a charge",
			raw:        "-30.00",
			account:    models.Account{Type: models.AccountTypeCredit, SignConvention: models.SignReversed},
			wantType:   models.TypeExpense,
			wantAmount: "-30",
		},
		{
			name:       "credit reversed positive is a payment",
			raw:        "30.00",
			account:    models.Account{Type: models.AccountTypeCredit, SignConvention: models.SignReversed},
			wantType:   models.TypeIncome,
			wantAmount: "30",
		},
		{
			name:       "credit defaults to standard when convention unset",
			raw:        "-30.00",
			account:    models.Account{Type: models.AccountTypeCredit},
			wantType:   models.TypeIncome,
			wantAmount: "30",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decimal.RequireFromString(tt.raw)
			amount, txType := sign.Resolve(raw, &tt.account)
			assert.Equal(t, tt.wantType, txType)
			assert.Equal(t, tt.wantAmount, amount.String())
		})
	}
}

func TestResolveZero(t *testing.T) {
	account := models.Account{Type: models.AccountTypeChecking}
	amount, txType := sign.Resolve(decimal.Zero, &account)
	assert.Equal(t, models.TypeIncome, txType)
	assert.True(t, amount.IsZero())
}
