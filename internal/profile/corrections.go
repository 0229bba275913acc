package profile

import (
	"sort"

	"cardmatch/internal/models"

	"github.com/shopspring/decimal"
)

// ApplyCorrections replaces transaction categories using a map keyed by
// normalized merchant key. Only the category field changes; ambiguity
// flags and candidates are preserved. The input slice is never mutated:
// the result is a fresh slice of copies.
func ApplyCorrections(transactions []models.Transaction, corrections map[string]models.Category) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		if category, ok := corrections[tx.MerchantKey()]; ok {
			tx = tx.WithCategory(category)
		}
		out[i] = tx
	}
	return out
}

// AmbiguousTransactions returns the transactions flagged for user
// verification.
func AmbiguousTransactions(transactions []models.Transaction) []models.Transaction {
	var out []models.Transaction
	for _, tx := range transactions {
		if tx.IsAmbiguous {
			out = append(out, tx)
		}
	}
	return out
}

// AmbiguousMerchant summarizes all ambiguous transactions sharing one
// merchant key. The correction workflow collects one decision per
// merchant, not per transaction.
type AmbiguousMerchant struct {
	Key                string
	Description        string
	DefaultCategory    models.Category
	PossibleCategories []models.Category
	Total              decimal.Decimal
	Count              int
}

// GroupAmbiguousMerchants groups flagged transactions by merchant key,
// summing their amounts. Results are ordered by total spend descending,
// then by key, so the biggest decisions surface first deterministically.
func GroupAmbiguousMerchants(transactions []models.Transaction) []AmbiguousMerchant {
	groups := make(map[string]*AmbiguousMerchant)

	for _, tx := range transactions {
		if !tx.IsAmbiguous {
			continue
		}

		key := tx.MerchantKey()
		group, ok := groups[key]
		if !ok {
			group = &AmbiguousMerchant{
				Key:                key,
				Description:        tx.Description,
				DefaultCategory:    tx.Category,
				PossibleCategories: tx.PossibleCategories,
				Total:              decimal.Zero,
			}
			groups[key] = group
		}
		group.Total = group.Total.Add(tx.Amount)
		group.Count++
	}

	out := make([]AmbiguousMerchant, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Key < out[j].Key
	})

	return out
}

// DefaultCorrections builds a corrections map from grouped ambiguous
// merchants using each merchant's default guess. Exported so users can
// edit the file and feed it back through ApplyCorrections.
func DefaultCorrections(merchants []AmbiguousMerchant) map[string]models.Category {
	corrections := make(map[string]models.Category, len(merchants))
	for _, m := range merchants {
		corrections[m.Key] = m.DefaultCategory
	}
	return corrections
}
