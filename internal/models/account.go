// Package models provides the data structures used throughout the application.
package models

// AccountType classifies an account for balance and sign-resolution purposes.
type AccountType string

// Supported account types.
const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCredit     AccountType = "Credit"
	AccountTypeCash       AccountType = "Cash"
	AccountTypeInvestment AccountType = "Investment"
)

// SignConvention maps the arithmetic sign of a raw CSV amount to a semantic
// transaction type. Card issuers disagree on polarity, so the convention is
// an explicit per-account setting rather than something we infer.
type SignConvention string

const (
	SignStandard SignConvention = "standard"
	SignReversed SignConvention = "reversed"
)

// Account represents a ledger account.
type Account struct {
	ID             int64          `yaml:"id"`
	Name           string         `yaml:"name"`
	Type           AccountType    `yaml:"type"`
	SignConvention SignConvention `yaml:"sign_convention,omitempty"`
	Description    string         `yaml:"description,omitempty"`
	CreatedAt      string         `yaml:"created_at,omitempty"`
}

// IsCredit returns true for credit-class accounts, which invert the meaning
// of the raw amount sign relative to asset accounts.
func (a *Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// EffectiveSignConvention returns the configured convention, defaulting to
// standard when unset.
func (a *Account) EffectiveSignConvention() SignConvention {
	if a.SignConvention == "" {
		return SignStandard
	}
	return a.SignConvention
}
