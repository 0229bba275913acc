// Package profile folds transactions into per-category spend profiles and
// applies user corrections to transaction batches.
package profile

import (
	"cardmatch/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate folds transactions into a spend profile. Every tag of the
// closed category set appears in the result even with zero spend, so the
// profile's key set is stable regardless of which categories occur.
// Transactions carrying a category outside the closed set are bucketed
// under "other". Pure and re-runnable.
func Aggregate(transactions []models.Transaction) models.SpendProfile {
	categories := make(map[models.Category]models.CategorySummary, len(models.AllCategories()))
	for _, c := range models.AllCategories() {
		categories[c] = models.CategorySummary{Total: decimal.Zero}
	}

	grandTotal := decimal.Zero
	for _, tx := range transactions {
		cat := tx.Category
		if !cat.Valid() {
			cat = models.CategoryOther
		}

		summary := categories[cat]
		summary.Total = summary.Total.Add(tx.Amount)
		categories[cat] = summary

		grandTotal = grandTotal.Add(tx.Amount)
	}

	if grandTotal.IsPositive() {
		for cat, summary := range categories {
			pct, _ := summary.Total.Mul(hundred).Div(grandTotal).Float64()
			summary.Percentage = pct
			categories[cat] = summary
		}
	}

	return models.SpendProfile{
		Categories: categories,
		GrandTotal: grandTotal,
	}
}
