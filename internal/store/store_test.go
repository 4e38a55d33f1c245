package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"walnutbook/csv-import/internal/models"
	"walnutbook/csv-import/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*store.LedgerStore, string) {
	dir := t.TempDir()
	return store.NewLedgerStore(dir, nil), dir
}

func TestLoadAccountsMissingFile(t *testing.T) {
	s, _ := newStore(t)
	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSaveAndLoadAccounts(t *testing.T) {
	s, _ := newStore(t)

	in := []models.Account{
		{ID: 1, Name: "Checking", Type: models.AccountTypeChecking},
		{ID: 2, Name: "Visa", Type: models.AccountTypeCredit, SignConvention: models.SignReversed},
	}
	require.NoError(t, s.SaveAccounts(in))

	out, err := s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Visa", out[1].Name)
	assert.Equal(t, models.SignReversed, out[1].SignConvention)
}

func TestGetAccount(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SaveAccounts([]models.Account{
		{ID: 1, Name: "Checking", Type: models.AccountTypeChecking},
	}))

	account, err := s.GetAccount(1)
	require.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)

	_, err = s.GetAccount(99)
	assert.Error(t, err)
}

func TestLoadCategoriesSeedsDefaults(t *testing.T) {
	s, _ := newStore(t)
	categories, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Add", categories[0].Name)
	assert.Equal(t, "Subtract", categories[1].Name)
}

func TestResolveCategory(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SaveCategories([]models.Category{
		{ID: 10, Name: "Groceries", Type: "Expense"},
	}))

	id, err := s.ResolveCategory("groceries")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(10), *id)

	// Unknown and blank names resolve to nil without error.
	id, err = s.ResolveCategory("Dining")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = s.ResolveCategory("  ")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	s, _ := newStore(t)
	transactions, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestAppendTransactionsAssignsIDs(t *testing.T) {
	s, _ := newStore(t)

	first := []models.Transaction{
		{Date: "2024-03-01", AccountID: 1, Type: models.TypeExpense, Amount: decimal.RequireFromString("-12.5"), Payee: "COFFEE SHOP"},
		{Date: "2024-03-02", AccountID: 1, Type: models.TypeIncome, Amount: decimal.RequireFromString("1500"), Payee: "PAYROLL"},
	}
	require.NoError(t, s.AppendTransactions(first))

	second := []models.Transaction{
		{Date: "2024-03-03", AccountID: 1, Type: models.TypeExpense, Amount: decimal.RequireFromString("-9.99"), Payee: "STREAMING PLUS"},
	}
	require.NoError(t, s.AppendTransactions(second))

	all, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(3), all[2].ID)
	assert.NotEmpty(t, all[0].CreatedAt)
	assert.True(t, all[2].Amount.Equal(decimal.RequireFromString("-9.99")))
}

func TestAppendTransactionsRoundTripsFields(t *testing.T) {
	s, _ := newStore(t)

	categoryID := int64(10)
	batch := []models.Transaction{
		{
			Date:       "2024-03-03",
			AccountID:  1,
			Type:       models.TypeExpense,
			CategoryID: &categoryID,
			Amount:     decimal.RequireFromString("-89.2"),
			Payee:      "GROCERY MART",
			Notes:      "weekly run",
		},
	}
	require.NoError(t, s.AppendTransactions(batch))

	all, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, all, 1)

	tx := all[0]
	assert.Equal(t, "GROCERY MART", tx.Payee)
	assert.Equal(t, "weekly run", tx.Notes)
	require.NotNil(t, tx.CategoryID)
	assert.Equal(t, int64(10), *tx.CategoryID)
	assert.Nil(t, tx.TransferID)
}

func TestWriteCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := store.NewLedgerStore(dir, nil)

	require.NoError(t, s.SaveAccounts([]models.Account{{ID: 1, Name: "Checking", Type: models.AccountTypeChecking}}))

	_, err := os.Stat(filepath.Join(dir, "accounts.yaml"))
	assert.NoError(t, err)
}
