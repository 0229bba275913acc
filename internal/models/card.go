package models

import "github.com/shopspring/decimal"

// RewardType distinguishes points cards from cash-back cards. The scoring
// formula does not branch on it: multipliers and PointValue are expressed
// so that rate * PointValue is a cash-equivalent rate for both types.
type RewardType string

// Reward types
const (
	RewardPoints   RewardType = "points"
	RewardCashback RewardType = "cashback"
)

// WelcomeBonus is a one-time reward granted for meeting an initial spend
// condition. MinSpend and Months describe the condition; scoring does not
// verify it against the actual spend profile.
type WelcomeBonus struct {
	Value    decimal.Decimal `yaml:"value,omitempty" json:"value,omitempty"`
	Points   int64           `yaml:"points,omitempty" json:"points,omitempty"`
	Cashback decimal.Decimal `yaml:"cashback,omitempty" json:"cashback,omitempty"`
	MinSpend decimal.Decimal `yaml:"min_spend,omitempty" json:"minSpend,omitempty"`
	Months   int             `yaml:"months,omitempty" json:"months,omitempty"`
}

// SpendCap is a per-category ceiling on a bonus rate. It is carried as
// catalog data but not applied by the scoring formula.
type SpendCap struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Period string          `yaml:"period,omitempty" json:"period,omitempty"`
}

// Card is one product record from the card catalog. The catalog is
// externally supplied and read-only to the engine.
type Card struct {
	ID             string                       `yaml:"id" json:"id"`
	Name           string                       `yaml:"name" json:"name"`
	Issuer         string                       `yaml:"issuer" json:"issuer"`
	Network        string                       `yaml:"network" json:"network"`
	AnnualFee      decimal.Decimal              `yaml:"annual_fee" json:"annualFee"`
	RewardType     RewardType                   `yaml:"reward_type" json:"rewardType"`
	PointValue     decimal.Decimal              `yaml:"point_value" json:"pointValue"`
	Multipliers    map[Category]decimal.Decimal `yaml:"multipliers,omitempty" json:"multipliers,omitempty"`
	BaseMultiplier decimal.Decimal              `yaml:"base_multiplier" json:"baseMultiplier"`
	WelcomeBonus   *WelcomeBonus                `yaml:"welcome_bonus,omitempty" json:"welcomeBonus,omitempty"`

	// CategorySpendCap is present in catalog data for some cards but is an
	// unimplemented scoring feature. See DESIGN.md.
	CategorySpendCap *SpendCap `yaml:"category_spend_cap,omitempty" json:"categorySpendCap,omitempty"`

	Tier    string     `yaml:"tier,omitempty" json:"tier,omitempty"`
	BestFor []Category `yaml:"best_for,omitempty" json:"bestFor,omitempty"`
	Notes   string     `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// CardsConfig is the structure of the cards catalog YAML file.
type CardsConfig struct {
	Cards []Card `yaml:"cards"`
}
