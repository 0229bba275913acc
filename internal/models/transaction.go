package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a canonical spend record produced by the normalizer.
// It is treated as immutable; corrections produce new copies.
type Transaction struct {
	ID          string          `csv:"ID" json:"id" yaml:"id"`
	Date        string          `csv:"Date" json:"date" yaml:"date"`
	Description string          `csv:"Description" json:"description" yaml:"description"`
	Amount      decimal.Decimal `csv:"Amount" json:"amount" yaml:"amount"`
	Category    Category        `csv:"Category" json:"category" yaml:"category"`

	// IsAmbiguous is true when the description matched a multi-category
	// merchant pattern. Category then holds the default guess and
	// PossibleCategories the candidates, first element first.
	IsAmbiguous        bool       `csv:"Ambiguous" json:"isAmbiguous" yaml:"is_ambiguous"`
	PossibleCategories []Category `csv:"-" json:"possibleCategories,omitempty" yaml:"possible_categories,omitempty"`
}

// MerchantKey returns the normalization key used for grouping transactions
// by merchant and for looking up user corrections.
func (t Transaction) MerchantKey() string {
	return strings.ToUpper(strings.TrimSpace(t.Description))
}

// WithCategory returns a copy of the transaction with only the category
// replaced. Ambiguity flags and candidates are preserved.
func (t Transaction) WithCategory(c Category) Transaction {
	t.Category = c
	return t
}

// ParseAmount converts a raw amount string into a decimal value.
// Currency symbols, thousands separators and surrounding whitespace are
// stripped. Unparsable input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
