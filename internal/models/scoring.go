package models

import "github.com/shopspring/decimal"

// ScoredResult is the projected value of one card against one spend
// profile. It is recomputed on every scoring call and never persisted.
type ScoredResult struct {
	CardID            string          `csv:"Card ID" json:"cardId"`
	CardName          string          `csv:"Card" json:"cardName"`
	Issuer            string          `csv:"Issuer" json:"issuer"`
	Network           string          `csv:"Network" json:"network"`
	RewardType        RewardType      `csv:"Reward Type" json:"rewardType"`
	AnnualFee         decimal.Decimal `csv:"Annual Fee" json:"annualFee"`
	AnnualRewards     decimal.Decimal `csv:"Annual Rewards" json:"annualRewards"`
	WelcomeBonusValue decimal.Decimal `csv:"Welcome Bonus" json:"welcomeBonusValue"`
	NetValue          decimal.Decimal `csv:"Net Value" json:"netValue"`
	NetValuePerYear   decimal.Decimal `csv:"Net Value Per Year" json:"netValuePerYear"`
	BestFor           []Category      `csv:"-" json:"bestFor,omitempty"`
	Notes             string          `csv:"-" json:"notes,omitempty"`
}
