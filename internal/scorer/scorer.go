// Package scorer computes projected reward value for card products
// against a spend profile and ranks a catalog by net value.
package scorer

import (
	"cardmatch/internal/models"

	"github.com/shopspring/decimal"
)

// defaultPointValue stands in for a catalog record that omits its point
// value, so scoring never fails on a sparse record.
var defaultPointValue = decimal.NewFromFloat(0.01)

// ScoreOptions controls a single scoring run. Years must be at least 1;
// the caller validates it at the boundary.
type ScoreOptions struct {
	IncludeWelcomeBonus bool
	Years               int
}

// Score computes the projected value of one card against one spend
// profile. The formula is reward-type-agnostic: multipliers and point
// value are normalized upstream so rate * pointValue is a cash-equivalent
// rate for both points and cash-back cards. Pure and deterministic.
func Score(card models.Card, spendProfile models.SpendProfile, opts ScoreOptions) models.ScoredResult {
	pointValue := card.PointValue
	if pointValue.IsZero() {
		pointValue = defaultPointValue
	}

	annualRewards := decimal.Zero
	for category, summary := range spendProfile.Categories {
		rate := card.Multipliers[category]
		if rate.IsZero() {
			rate = card.BaseMultiplier
		}
		annualRewards = annualRewards.Add(summary.Total.Mul(rate).Mul(pointValue))
	}

	// Bonus presence alone triggers inclusion; minimum-spend and time
	// window conditions are not verified against the profile.
	welcomeBonus := decimal.Zero
	if opts.IncludeWelcomeBonus && card.WelcomeBonus != nil && opts.Years >= 1 {
		switch {
		case !card.WelcomeBonus.Value.IsZero():
			welcomeBonus = card.WelcomeBonus.Value
		case card.WelcomeBonus.Points > 0:
			welcomeBonus = decimal.NewFromInt(card.WelcomeBonus.Points).Mul(pointValue)
		}
	}

	years := decimal.NewFromInt(int64(opts.Years))

	// The welcome bonus is a one-time amount: it is applied once
	// regardless of horizon, while rewards and fees scale with years.
	var netValue decimal.Decimal
	if opts.Years == 1 {
		netValue = annualRewards.Add(welcomeBonus).Sub(card.AnnualFee)
	} else {
		netValue = annualRewards.Mul(years).Add(welcomeBonus).Sub(card.AnnualFee.Mul(years))
	}

	return models.ScoredResult{
		CardID:            card.ID,
		CardName:          card.Name,
		Issuer:            card.Issuer,
		Network:           card.Network,
		RewardType:        card.RewardType,
		AnnualFee:         card.AnnualFee,
		AnnualRewards:     annualRewards,
		WelcomeBonusValue: welcomeBonus,
		NetValue:          netValue,
		NetValuePerYear:   netValue.Div(years),
		BestFor:           card.BestFor,
		Notes:             card.Notes,
	}
}
