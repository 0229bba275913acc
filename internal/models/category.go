// Package models provides the data structures used throughout the application.
package models

// Category is a spending category tag. The set of categories is closed:
// the classifier, the aggregator and the card catalog all share it.
type Category string

// Spending categories
const (
	CategoryGroceries     Category = "groceries"
	CategoryGas           Category = "gas"
	CategoryDining        Category = "dining"
	CategoryTransit       Category = "transit"
	CategoryRecurring     Category = "recurring"
	CategoryTravel        Category = "travel"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// AllCategories returns the closed category set in display order.
// The slice is freshly allocated on every call so callers may reorder it.
func AllCategories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryGas,
		CategoryDining,
		CategoryTransit,
		CategoryRecurring,
		CategoryTravel,
		CategoryEntertainment,
		CategoryShopping,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryGas, CategoryDining, CategoryTransit,
		CategoryRecurring, CategoryTravel, CategoryEntertainment,
		CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// String returns the category tag as a plain string.
func (c Category) String() string {
	return string(c)
}
