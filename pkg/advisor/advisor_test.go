package advisor

import (
	"testing"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"
	"cardmatch/internal/normalizer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statementHeaders() []string {
	return []string{"Date", "Description", "Amount"}
}

func TestAnalyze_SingleGroceryTransaction(t *testing.T) {
	a := New(&logging.MockLogger{})

	rows := []normalizer.Row{
		{"Date": "2024-01-05", "Description": "LOBLAWS #123", "Amount": "100.00"},
	}

	transactions, profile := a.Analyze(rows, statementHeaders(), nil)

	require.Len(t, transactions, 1)
	assert.Equal(t, models.CategoryGroceries, transactions[0].Category)

	groceries := profile.Categories[models.CategoryGroceries]
	assert.True(t, groceries.Total.Equal(decimal.RequireFromString("100.00")))
	assert.InDelta(t, 100.0, groceries.Percentage, 1e-9)
	assert.True(t, profile.GrandTotal.Equal(decimal.RequireFromString("100.00")))
}

func TestAnalyze_AmbiguousMerchantFlagged(t *testing.T) {
	a := New(&logging.MockLogger{})

	rows := []normalizer.Row{
		{"Date": "2024-01-05", "Description": "WALMART SUPERCENTER", "Amount": "80.00"},
	}

	transactions, profile := a.Analyze(rows, statementHeaders(), nil)

	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].IsAmbiguous)
	assert.Equal(t, models.CategoryGroceries, transactions[0].Category)

	// The default guess drives the profile until a correction arrives.
	groceries := profile.Categories[models.CategoryGroceries]
	assert.True(t, groceries.Total.Equal(decimal.RequireFromString("80.00")))
}

func TestAnalyze_CorrectionsRecategorize(t *testing.T) {
	a := New(&logging.MockLogger{})

	rows := []normalizer.Row{
		{"Date": "2024-01-05", "Description": "WALMART SUPERCENTER", "Amount": "80.00"},
		{"Date": "2024-01-06", "Description": "LOBLAWS", "Amount": "20.00"},
	}
	corrections := map[string]models.Category{
		"WALMART SUPERCENTER": models.CategoryShopping,
	}

	transactions, profile := a.Analyze(rows, statementHeaders(), corrections)

	require.Len(t, transactions, 2)
	assert.Equal(t, models.CategoryShopping, transactions[0].Category)

	shopping := profile.Categories[models.CategoryShopping]
	assert.True(t, shopping.Total.Equal(decimal.RequireFromString("80.00")))
	groceries := profile.Categories[models.CategoryGroceries]
	assert.True(t, groceries.Total.Equal(decimal.RequireFromString("20.00")))
}

func TestAnalyze_EmptyStatement(t *testing.T) {
	a := New(&logging.MockLogger{})

	transactions, profile := a.Analyze(nil, statementHeaders(), nil)

	assert.Empty(t, transactions)
	assert.True(t, profile.GrandTotal.IsZero())
	assert.Len(t, profile.Categories, len(models.AllCategories()))
}

func TestRecommend(t *testing.T) {
	a := New(&logging.MockLogger{})

	rows := []normalizer.Row{
		{"Date": "2024-01-05", "Description": "LOBLAWS", "Amount": "1000.00"},
	}
	_, profile := a.Analyze(rows, statementHeaders(), nil)

	catalog := []models.Card{
		{
			ID:         "grocery-card",
			Name:       "Grocery Card",
			AnnualFee:  decimal.RequireFromString("100"),
			PointValue: decimal.RequireFromString("0.01"),
			Multipliers: map[models.Category]decimal.Decimal{
				models.CategoryGroceries: decimal.RequireFromString("5"),
			},
			BaseMultiplier: decimal.RequireFromString("1"),
		},
		{
			ID:             "flat-card",
			Name:           "Flat Card",
			PointValue:     decimal.RequireFromString("0.01"),
			BaseMultiplier: decimal.RequireFromString("2"),
		},
	}

	results, err := a.Recommend(catalog, profile, Options{Years: 1})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Flat card: 1000*2*0.01 = 20, no fee. Grocery card: 50 - 100 = -50.
	assert.Equal(t, "flat-card", results[0].CardID)
	assert.True(t, results[0].NetValue.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "grocery-card", results[1].CardID)
	assert.True(t, results[1].NetValue.Equal(decimal.RequireFromString("-50")))
}

func TestRecommend_InvalidOptions(t *testing.T) {
	a := New(&logging.MockLogger{})
	p := models.SpendProfile{}

	tests := []struct {
		name string
		opts Options
	}{
		{"zero years", Options{Years: 0}},
		{"negative years", Options{Years: -1}},
		{"negative limit", Options{Years: 1, Limit: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Recommend(nil, p, tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestCompare(t *testing.T) {
	a := New(&logging.MockLogger{})

	rows := []normalizer.Row{
		{"Date": "2024-01-05", "Description": "LOBLAWS", "Amount": "1000.00"},
	}
	_, profile := a.Analyze(rows, statementHeaders(), nil)

	catalog := []models.Card{
		{ID: "old", PointValue: decimal.RequireFromString("0.01"), BaseMultiplier: decimal.RequireFromString("1")},
		{ID: "new", PointValue: decimal.RequireFromString("0.01"), BaseMultiplier: decimal.RequireFromString("3")},
	}

	comparison, err := a.Compare(catalog, profile, "old", "new", Options{Years: 1})
	require.NoError(t, err)
	assert.True(t, comparison.Difference.Equal(decimal.RequireFromString("20")))
}

func TestCompare_InvalidYears(t *testing.T) {
	a := New(&logging.MockLogger{})

	_, err := a.Compare(nil, models.SpendProfile{}, "a", "b", Options{Years: 0})
	assert.Error(t, err)
}

func TestNewWithRules(t *testing.T) {
	rules := models.RulesConfig{
		Definite: []models.DefiniteRule{
			{Pattern: `acme`, Category: models.CategoryShopping},
		},
	}

	a, err := NewWithRules(rules, &logging.MockLogger{})
	require.NoError(t, err)

	transactions, _ := a.Analyze(
		[]normalizer.Row{{"Date": "2024-01-05", "Description": "ACME STORE", "Amount": "10"}},
		statementHeaders(), nil)

	require.Len(t, transactions, 1)
	assert.Equal(t, models.CategoryShopping, transactions[0].Category)
}
