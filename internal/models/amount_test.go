package models_test

import (
	"testing"

	"walnutbook/csv-import/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "12.50", "12.5"},
		{"negative", "-12.50", "-12.5"},
		{"parenthesized is negative", "(45.00)", "-45"},
		{"thousand comma", "1,234.56", "1234.56"},
		{"thousand dot comma decimal", "1.234,56", "1234.56"},
		{"comma decimal", "1234,56", "1234.56"},
		{"comma thousands only", "1,234", "1234"},
		{"comma thousands repeated", "1,234,567", "1234567"},
		{"negative european", "-1.234,56", "-1234.56"},
		{"swiss apostrophe", "1'234.56", "1234.56"},
		{"currency prefix", "CHF 100.00", "100"},
		{"dollar sign", "$99.95", "99.95"},
		{"euro symbol", "€50,00", "50"},
		{"surrounding whitespace", "  42.00  ", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12.34.56"} {
		_, err := models.ParseAmount(raw)
		assert.Error(t, err, raw)
	}
}
