package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the semantic classification of a ledger transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "Income"
	TypeExpense  TransactionType = "Expense"
	TypeTransfer TransactionType = "Transfer"
	TypeAdjust   TransactionType = "Adjust"
)

// Transaction represents one ledger transaction. The csv tags drive the
// on-disk transaction log codec; dates are stored in ISO form (YYYY-MM-DD).
type Transaction struct {
	ID         int64           `csv:"Id"`
	Date       string          `csv:"Date"`
	AccountID  int64           `csv:"AccountId"`
	Type       TransactionType `csv:"Type"`
	CategoryID *int64          `csv:"CategoryId"`
	Amount     decimal.Decimal `csv:"Amount"`
	Payee      string          `csv:"Payee"`
	Notes      string          `csv:"Notes"`
	TransferID *int64          `csv:"TransferId"`
	CreatedAt  string          `csv:"CreatedAt"`
}

// Category represents a spending or income category.
type Category struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// IsTransfer reports whether the transaction is one side of an account pair.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}
