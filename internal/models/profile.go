package models

import "github.com/shopspring/decimal"

// CategorySummary holds the aggregated spend for one category.
type CategorySummary struct {
	Total      decimal.Decimal `json:"total" yaml:"total"`
	Percentage float64         `json:"percentage" yaml:"percentage"`
}

// SpendProfile is the per-category breakdown of a batch of transactions.
// Categories always contains every tag of the closed category set, even
// when the total is zero.
type SpendProfile struct {
	Categories map[Category]CategorySummary `json:"categories" yaml:"categories"`
	GrandTotal decimal.Decimal              `json:"grandTotal" yaml:"grand_total"`
}

// CategoryTotal returns the aggregated total for a category, zero when the
// category is not present.
func (p SpendProfile) CategoryTotal(c Category) decimal.Decimal {
	return p.Categories[c].Total
}
