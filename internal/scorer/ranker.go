package scorer

import (
	"fmt"
	"sort"

	"cardmatch/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultLimit caps the ranked result list when no limit is given.
const DefaultLimit = 5

// RankOptions controls a ranking run over a catalog.
type RankOptions struct {
	Limit               int
	IncludeWelcomeBonus bool
	Years               int
}

// Rank scores every card in the catalog against the profile and returns
// the results ordered by net value descending, truncated to the limit
// after sorting. Equal net values keep catalog order (stable sort), so
// rankings are reproducible across runs. An empty catalog yields an empty
// slice.
func Rank(catalog []models.Card, spendProfile models.SpendProfile, opts RankOptions) []models.ScoredResult {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]models.ScoredResult, 0, len(catalog))
	for _, card := range catalog {
		results = append(results, Score(card, spendProfile, ScoreOptions{
			IncludeWelcomeBonus: opts.IncludeWelcomeBonus,
			Years:               opts.Years,
		}))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetValue.GreaterThan(results[j].NetValue)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// Comparison reports how much more or less a proposed card would earn
// than the user's current card under identical options.
type Comparison struct {
	Current           models.ScoredResult `json:"current"`
	Proposed          models.ScoredResult `json:"proposed"`
	Difference        decimal.Decimal     `json:"difference"`
	DifferencePerYear decimal.Decimal     `json:"differencePerYear"`
}

// Compare scores two named cards from the catalog against the profile.
// Unknown card IDs are reported as errors.
func Compare(catalog []models.Card, spendProfile models.SpendProfile, currentID, proposedID string, opts ScoreOptions) (Comparison, error) {
	current, ok := findCard(catalog, currentID)
	if !ok {
		return Comparison{}, fmt.Errorf("card not found in catalog: %s", currentID)
	}
	proposed, ok := findCard(catalog, proposedID)
	if !ok {
		return Comparison{}, fmt.Errorf("card not found in catalog: %s", proposedID)
	}

	currentResult := Score(current, spendProfile, opts)
	proposedResult := Score(proposed, spendProfile, opts)

	years := opts.Years
	if years < 1 {
		years = 1
	}

	difference := proposedResult.NetValue.Sub(currentResult.NetValue)

	return Comparison{
		Current:           currentResult,
		Proposed:          proposedResult,
		Difference:        difference,
		DifferencePerYear: difference.Div(decimal.NewFromInt(int64(years))),
	}, nil
}

func findCard(catalog []models.Card, id string) (models.Card, bool) {
	for _, card := range catalog {
		if card.ID == id {
			return card, true
		}
	}
	return models.Card{}, false
}
