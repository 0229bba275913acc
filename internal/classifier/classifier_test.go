package classifier

import (
	"errors"
	"testing"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"
	"cardmatch/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DefiniteRules(t *testing.T) {
	c := New(&logging.MockLogger{})

	tests := []struct {
		name             string
		description      string
		expectedCategory models.Category
	}{
		{"grocery store", "LOBLAWS #123", models.CategoryGroceries},
		{"grocery store lowercase", "no frills toronto", models.CategoryGroceries},
		{"gas station", "PETRO-CANADA 555", models.CategoryGas},
		{"food delivery", "UBER EATS TORONTO", models.CategoryDining},
		{"rideshare", "UBER *TRIP HELP.UBER.COM", models.CategoryTransit},
		{"restaurant catch-all", "SOME RESTAURANT DOWNTOWN", models.CategoryDining},
		{"streaming", "NETFLIX.COM", models.CategoryRecurring},
		{"airline", "AIR CANADA YYZ", models.CategoryTravel},
		{"cinema", "CINEPLEX 7723", models.CategoryEntertainment},
		{"online shopping", "AMZN Mktp CA", models.CategoryShopping},
		{"unknown merchant", "ACME WIDGETS INC", models.CategoryOther},
		{"empty description", "", models.CategoryOther},
		{"whitespace only", "   ", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.description)

			assert.Equal(t, tt.expectedCategory, result.Category)
			assert.False(t, result.IsAmbiguous)
			assert.Empty(t, result.PossibleCategories)
		})
	}
}

func TestClassify_AmbiguousRules(t *testing.T) {
	c := New(&logging.MockLogger{})

	tests := []struct {
		name            string
		description     string
		expectedDefault models.Category
		expectedOptions []models.Category
	}{
		{
			name:            "walmart",
			description:     "WALMART SUPERCENTER #1061",
			expectedDefault: models.CategoryGroceries,
			expectedOptions: []models.Category{models.CategoryGroceries, models.CategoryShopping},
		},
		{
			name:            "costco",
			description:     "COSTCO WHOLESALE W550",
			expectedDefault: models.CategoryGroceries,
			expectedOptions: []models.Category{models.CategoryGroceries, models.CategoryShopping, models.CategoryGas},
		},
		{
			name:            "real canadian superstore",
			description:     "REAL CANADIAN SUPERSTORE #1522",
			expectedDefault: models.CategoryGroceries,
			expectedOptions: []models.Category{models.CategoryGroceries, models.CategoryShopping},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.description)

			assert.True(t, result.IsAmbiguous)
			assert.Equal(t, tt.expectedDefault, result.Category)
			assert.Equal(t, tt.expectedOptions, result.PossibleCategories)
		})
	}
}

// A description matching both an ambiguous and a definite pattern must
// resolve to the ambiguous result: "REAL CANADIAN SUPERSTORE" also matches
// the definite "superstore" grocery rule.
func TestClassify_AmbiguousPrecedesDefinite(t *testing.T) {
	c := New(&logging.MockLogger{})

	result := c.Classify("REAL CANADIAN SUPERSTORE")
	assert.True(t, result.IsAmbiguous)

	// The plain definite rule still applies when the ambiguous one does not.
	result = c.Classify("ATLANTIC SUPERSTORE")
	assert.False(t, result.IsAmbiguous)
	assert.Equal(t, models.CategoryGroceries, result.Category)
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(&logging.MockLogger{})

	descriptions := []string{
		"WALMART SUPERCENTER", "LOBLAWS #1", "random text", "", "UBER EATS",
	}

	for _, d := range descriptions {
		first := c.Classify(d)
		second := c.Classify(d)
		assert.Equal(t, first, second, "classification of %q must be deterministic", d)
	}
}

func TestNewFromConfig_SkipsInvalidPatterns(t *testing.T) {
	logger := &logging.MockLogger{}
	cfg := models.RulesConfig{
		Definite: []models.DefiniteRule{
			{Pattern: `(unclosed`, Category: models.CategoryDining},
			{Pattern: `valid`, Category: models.CategoryShopping},
		},
	}

	c, err := NewFromConfig(cfg, logger)
	require.NoError(t, err)

	result := c.Classify("VALID MERCHANT")
	assert.Equal(t, models.CategoryShopping, result.Category)
	assert.True(t, logger.HasMessage("Skipping definite rule with invalid pattern"))
}

func TestNewFromConfig_AllPatternsInvalid(t *testing.T) {
	cfg := models.RulesConfig{
		Definite: []models.DefiniteRule{
			{Pattern: `(`, Category: models.CategoryDining},
		},
	}

	_, err := NewFromConfig(cfg, &logging.MockLogger{})
	assert.Error(t, err)
}

func TestNewFromStore_FallsBackToBuiltinRules(t *testing.T) {
	tests := []struct {
		name string
		src  *store.MockStore
	}{
		{"empty rule set", &store.MockStore{}},
		{"load error", &store.MockStore{RulesErr: errors.New("disk gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFromStore(tt.src, &logging.MockLogger{})

			result := c.Classify("LOBLAWS")
			assert.Equal(t, models.CategoryGroceries, result.Category)
		})
	}
}

func TestNewFromStore_UsesStoreRules(t *testing.T) {
	src := &store.MockStore{Rules: models.RulesConfig{
		Definite: []models.DefiniteRule{
			{Pattern: `corner\s?store`, Category: models.CategoryGroceries},
		},
	}}

	c := NewFromStore(src, &logging.MockLogger{})

	assert.Equal(t, models.CategoryGroceries, c.Classify("CORNER STORE #9").Category)
	// Built-in rules are replaced, not merged.
	assert.Equal(t, models.CategoryOther, c.Classify("LOBLAWS").Category)
}
