package fieldmap_test

import (
	"testing"

	"walnutbook/csv-import/internal/fieldmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSimpleHeader(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Date", "Amount", "Description"})
	require.NoError(t, err)

	assert.Equal(t, 0, m.Date)
	assert.Equal(t, 1, m.Amount)
	assert.Equal(t, 2, m.Payee)
	assert.False(t, m.HasSplitAmount())
	assert.False(t, m.HasCategory())
	assert.False(t, m.HasNotes())
}

func TestResolvePrefersExactDate(t *testing.T) {
	// "Date" wins over "Posted Date" even when it appears later.
	m, err := fieldmap.Resolve([]string{"Posted Date", "Date", "Amount", "Payee"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Date)
}

func TestResolveDateSubstring(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Transaction Date", "Amount", "Payee"})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Date)
}

func TestResolveDebitCreditPair(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Date", "Debit", "Credit", "Description"})
	require.NoError(t, err)

	assert.True(t, m.HasSplitAmount())
	assert.Equal(t, 1, m.Debit)
	assert.Equal(t, 2, m.Credit)
	assert.Equal(t, -1, m.Amount)
}

func TestResolveAmountWinsOverDebitCredit(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Date", "Amount", "Debit", "Credit", "Payee"})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Amount)
	assert.False(t, m.HasSplitAmount())
}

func TestResolvePayeeFallsBackToFirstColumn(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Vendor", "Date", "Amount"})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Payee)
}

func TestResolveCategoryAndNotes(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"Date", "Amount", "Payee", "Category", "Notes"})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Category)
	assert.True(t, m.HasCategory())
	assert.Equal(t, 4, m.Notes)
	assert.True(t, m.HasNotes())
}

func TestResolveNotesSkipsPayeeColumn(t *testing.T) {
	// "Memo" is claimed as payee; a later memo-like column can still be notes.
	m, err := fieldmap.Resolve([]string{"Date", "Amount", "Memo", "Memo 2"})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Payee)
	assert.Equal(t, 3, m.Notes)
}

func TestResolveMissingDate(t *testing.T) {
	_, err := fieldmap.Resolve([]string{"Amount", "Description"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no date column")
}

func TestResolveMissingAmount(t *testing.T) {
	_, err := fieldmap.Resolve([]string{"Date", "Description"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no amount or debit/credit columns")
}

func TestResolveDebitOnlyIsNotEnough(t *testing.T) {
	_, err := fieldmap.Resolve([]string{"Date", "Debit", "Description"})
	assert.Error(t, err)
}

func TestResolveCaseInsensitive(t *testing.T) {
	m, err := fieldmap.Resolve([]string{"DATE", "AMOUNT", "DESCRIPTION"})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Date)
	assert.Equal(t, 1, m.Amount)
	assert.Equal(t, 2, m.Payee)
}
