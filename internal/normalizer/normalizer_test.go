package normalizer

import (
	"os"
	"path/filepath"
	"testing"

	"cardmatch/internal/classifier"
	"cardmatch/internal/logging"
	"cardmatch/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	logger := &logging.MockLogger{}
	return New(classifier.New(logger), logger)
}

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected Columns
	}{
		{
			name:     "canonical headers",
			headers:  []string{"Date", "Description", "Amount"},
			expected: Columns{Date: "Date", Description: "Description", Amount: "Amount"},
		},
		{
			name:     "bank export variants",
			headers:  []string{"Posted", "Payee", "Debit"},
			expected: Columns{Date: "Posted", Description: "Payee", Amount: "Debit"},
		},
		{
			name:     "transaction date and memo",
			headers:  []string{"Transaction Date", "Memo", "Value"},
			expected: Columns{Date: "Transaction Date", Description: "Memo", Amount: "Value"},
		},
		{
			name:     "first matching header wins",
			headers:  []string{"Date", "Posted Date", "Merchant", "Payee", "Debit", "Credit"},
			expected: Columns{Date: "Date", Description: "Merchant", Amount: "Debit"},
		},
		{
			name:     "case insensitive",
			headers:  []string{"DATE", "DESCRIPTION", "AMOUNT"},
			expected: Columns{Date: "DATE", Description: "DESCRIPTION", Amount: "AMOUNT"},
		},
		{
			name:     "unresolvable roles stay empty",
			headers:  []string{"Foo", "Bar"},
			expected: Columns{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveColumns(tt.headers))
		})
	}
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()
	headers := []string{"Date", "Description", "Amount"}

	rows := []Row{
		{"Date": "2024-01-05", "Description": "LOBLAWS #123", "Amount": "100.00"},
		{"Date": "2024-01-06", "Description": "PETRO-CANADA", "Amount": "-45.50"},
		{"Date": "2024-01-07", "Description": "REFUND", "Amount": "0.00"},
		{"Date": "2024-01-08", "Description": "AMAZON.CA", "Amount": "$1,234.56"},
	}

	transactions := n.Normalize(rows, headers)
	require.Len(t, transactions, 3)

	assert.Equal(t, "tx-0", transactions[0].ID)
	assert.Equal(t, "2024-01-05", transactions[0].Date)
	assert.Equal(t, "LOBLAWS #123", transactions[0].Description)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, models.CategoryGroceries, transactions[0].Category)

	// Negative amounts are treated as spend, so the sign is dropped.
	assert.Equal(t, "tx-1", transactions[1].ID)
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("45.50")))
	assert.Equal(t, models.CategoryGas, transactions[1].Category)

	// Currency symbols and thousands separators are cleansed.
	assert.Equal(t, "tx-3", transactions[2].ID)
	assert.True(t, transactions[2].Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, models.CategoryShopping, transactions[2].Category)
}

func TestNormalize_AmbiguousMerchant(t *testing.T) {
	n := newTestNormalizer()

	transactions := n.Normalize(
		[]Row{{"Date": "2024-02-01", "Description": "WALMART SUPERCENTER", "Amount": "80"}},
		[]string{"Date", "Description", "Amount"},
	)

	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].IsAmbiguous)
	assert.Equal(t, models.CategoryGroceries, transactions[0].Category)
	assert.Equal(t,
		[]models.Category{models.CategoryGroceries, models.CategoryShopping},
		transactions[0].PossibleCategories)
}

func TestNormalize_DropsUnparsableAmounts(t *testing.T) {
	n := newTestNormalizer()

	transactions := n.Normalize(
		[]Row{
			{"Date": "2024-02-01", "Description": "JUNK", "Amount": "n/a"},
			{"Date": "2024-02-02", "Description": "STARBUCKS", "Amount": ""},
		},
		[]string{"Date", "Description", "Amount"},
	)

	assert.Empty(t, transactions)
}

func TestNormalize_MissingColumnsDegrade(t *testing.T) {
	logger := &logging.MockLogger{}
	n := New(classifier.New(logger), logger)

	transactions := n.Normalize(
		[]Row{{"Amount": "25.00"}},
		[]string{"Amount"},
	)

	require.Len(t, transactions, 1)
	assert.Empty(t, transactions[0].Date)
	assert.Empty(t, transactions[0].Description)
	assert.Equal(t, models.CategoryOther, transactions[0].Category)
	assert.True(t, logger.HasMessage("Could not identify all column roles, continuing with defaults"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := newTestNormalizer()

	transactions := n.Normalize(nil, []string{"Date", "Description", "Amount"})
	assert.Empty(t, transactions)
}

func TestLoadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")

	content := "Posted,Payee,Debit\n" +
		"2024-01-05,LOBLAWS #123,100.00\n" +
		"2024-01-06,NETFLIX.COM,16.49\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, headers, err := LoadRows(path, ',', &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Posted", "Payee", "Debit"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "LOBLAWS #123", rows[0]["Payee"])
	assert.Equal(t, "16.49", rows[1]["Debit"])
}

func TestLoadRows_SemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")

	content := "Date;Description;Amount\n2024-01-05;CAFE MILANO;12.50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, headers, err := LoadRows(path, ';', &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAFE MILANO", rows[0]["Description"])
}

func TestLoadRows_ShortRecordsKeepKnownColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")

	content := "Date,Description,Amount\n2024-01-05,LOBLAWS\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, _, err := LoadRows(path, ',', &logging.MockLogger{})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "LOBLAWS", rows[0]["Description"])
	_, ok := rows[0]["Amount"]
	assert.False(t, ok)
}

func TestLoadRows_MissingFile(t *testing.T) {
	_, _, err := LoadRows(filepath.Join(t.TempDir(), "nope.csv"), ',', &logging.MockLogger{})
	assert.Error(t, err)
}

func TestLoadRows_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, _, err := LoadRows(path, ',', &logging.MockLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
