package importerror_test

import (
	"errors"
	"fmt"
	"testing"

	"walnutbook/csv-import/internal/importerror"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	err := &importerror.FormatError{FilePath: "march.csv", Reason: "no date column found in header"}
	assert.Equal(t, "cannot import march.csv: no date column found in header", err.Error())
}

func TestRowError(t *testing.T) {
	cause := errors.New("unable to parse date: banana")
	err := &importerror.RowError{Row: 4, Field: "date", Value: "banana", Err: cause}

	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), `date="banana"`)
	assert.ErrorIs(t, err, cause)
}

func TestRowErrorReason(t *testing.T) {
	err := &importerror.RowError{Row: 4, Field: "date", Value: "banana", Err: errors.New("unparseable date")}
	assert.Equal(t, `unparseable date (date="banana")`, err.Reason())
	assert.NotContains(t, err.Reason(), "row 4")

	// No captured value: the cause stands alone.
	err = &importerror.RowError{Row: 2, Field: "payee", Err: errors.New("missing payee")}
	assert.Equal(t, "missing payee", err.Reason())
}

func TestRowErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("importing: %w", &importerror.RowError{Row: 1, Field: "amount", Value: "x", Err: cause})

	var rowErr *importerror.RowError
	assert.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Row)
}

func TestValidationError(t *testing.T) {
	err := &importerror.ValidationError{FilePath: "march.csv", Reason: "empty file"}
	assert.Equal(t, "validation failed for march.csv: empty file", err.Error())
}
