// Package advisor composes the full recommendation pipeline behind a
// single API: statement rows in, categorized transactions, spend profile
// and ranked card results out.
package advisor

import (
	"fmt"

	"cardmatch/internal/classifier"
	"cardmatch/internal/logging"
	"cardmatch/internal/models"
	"cardmatch/internal/normalizer"
	"cardmatch/internal/profile"
	"cardmatch/internal/scorer"
)

// Options controls ranking runs made through the advisor.
type Options struct {
	Limit               int
	IncludeWelcomeBonus bool
	Years               int
}

// Advisor runs the statement analysis pipeline.
type Advisor struct {
	normalizer *normalizer.Normalizer
	logger     logging.Logger
}

// New creates an advisor with the built-in classifier rules.
func New(logger logging.Logger) *Advisor {
	return &Advisor{
		normalizer: normalizer.New(classifier.New(logger), logger),
		logger:     logger,
	}
}

// NewWithRules creates an advisor with an explicit classifier rule set.
func NewWithRules(rules models.RulesConfig, logger logging.Logger) (*Advisor, error) {
	c, err := classifier.NewFromConfig(rules, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier rules: %w", err)
	}
	return &Advisor{
		normalizer: normalizer.New(c, logger),
		logger:     logger,
	}, nil
}

// Analyze normalizes raw statement rows, applies any corrections, and
// aggregates the result into a spend profile. The returned transactions
// carry ambiguity flags for the verification workflow.
func (a *Advisor) Analyze(rows []normalizer.Row, headers []string, corrections map[string]models.Category) ([]models.Transaction, models.SpendProfile) {
	transactions := a.normalizer.Normalize(rows, headers)
	if len(corrections) > 0 {
		transactions = profile.ApplyCorrections(transactions, corrections)
	}
	return transactions, profile.Aggregate(transactions)
}

// Recommend ranks the catalog against a spend profile. Options are
// validated here so the core scoring loop never sees an invalid horizon.
func (a *Advisor) Recommend(catalog []models.Card, spendProfile models.SpendProfile, opts Options) ([]models.ScoredResult, error) {
	if opts.Years < 1 {
		return nil, fmt.Errorf("years must be at least 1, got %d", opts.Years)
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", opts.Limit)
	}

	return scorer.Rank(catalog, spendProfile, scorer.RankOptions{
		Limit:               opts.Limit,
		IncludeWelcomeBonus: opts.IncludeWelcomeBonus,
		Years:               opts.Years,
	}), nil
}

// Compare scores two named cards under identical options and reports the
// signed difference in net value.
func (a *Advisor) Compare(catalog []models.Card, spendProfile models.SpendProfile, currentID, proposedID string, opts Options) (scorer.Comparison, error) {
	if opts.Years < 1 {
		return scorer.Comparison{}, fmt.Errorf("years must be at least 1, got %d", opts.Years)
	}

	return scorer.Compare(catalog, spendProfile, currentID, proposedID, scorer.ScoreOptions{
		IncludeWelcomeBonus: opts.IncludeWelcomeBonus,
		Years:               opts.Years,
	})
}
