package classifier

import "cardmatch/internal/models"

// DefaultRules returns the built-in merchant rule set. It is configuration
// data: the matching algorithm in Classify never changes when a different
// rule set is loaded from YAML.
//
// Definite rules are ordered by specificity. Narrow merchant names come
// first and broad catch-alls last, so "uber eats" (dining) is tried before
// the plain "uber" rule (transit) and first match wins.
func DefaultRules() models.RulesConfig {
	return models.RulesConfig{
		// Merchants that plausibly belong to more than one category and
		// need user verification. The first candidate is the default guess.
		Ambiguous: []models.AmbiguousRule{
			{Pattern: `walmart`, Categories: []models.Category{models.CategoryGroceries, models.CategoryShopping}},
			{Pattern: `costco`, Categories: []models.Category{models.CategoryGroceries, models.CategoryShopping, models.CategoryGas}},
			{Pattern: `real\s?canadian\s?superstore`, Categories: []models.Category{models.CategoryGroceries, models.CategoryShopping}},
		},
		Definite: []models.DefiniteRule{
			// Groceries
			{Pattern: `loblaws?`, Category: models.CategoryGroceries},
			{Pattern: `no\s?frills`, Category: models.CategoryGroceries},
			{Pattern: `superstore`, Category: models.CategoryGroceries},
			{Pattern: `sobeys`, Category: models.CategoryGroceries},
			{Pattern: `safeway`, Category: models.CategoryGroceries},
			{Pattern: `metro\s?(plus)?`, Category: models.CategoryGroceries},
			{Pattern: `freshco`, Category: models.CategoryGroceries},
			{Pattern: `food\s?basics`, Category: models.CategoryGroceries},
			{Pattern: `farm\s?boy`, Category: models.CategoryGroceries},
			{Pattern: `whole\s?foods`, Category: models.CategoryGroceries},
			{Pattern: `t&t\s?supermarket`, Category: models.CategoryGroceries},

			// Gas
			{Pattern: `petro[\s-]?canada`, Category: models.CategoryGas},
			{Pattern: `shell`, Category: models.CategoryGas},
			{Pattern: `esso`, Category: models.CategoryGas},
			{Pattern: `pioneer`, Category: models.CategoryGas},
			{Pattern: `husky`, Category: models.CategoryGas},
			{Pattern: `costco\s?gas`, Category: models.CategoryGas},
			{Pattern: `ultramar`, Category: models.CategoryGas},
			{Pattern: `canadian\s?tire\s?gas`, Category: models.CategoryGas},

			// Dining. Delivery services precede the plain "uber" transit rule.
			{Pattern: `uber\s?eats`, Category: models.CategoryDining},
			{Pattern: `doordash`, Category: models.CategoryDining},
			{Pattern: `skip\s?the\s?dishes`, Category: models.CategoryDining},
			{Pattern: `mcdonald'?s`, Category: models.CategoryDining},
			{Pattern: `starbucks`, Category: models.CategoryDining},
			{Pattern: `tim\s?horton`, Category: models.CategoryDining},
			{Pattern: `a&w`, Category: models.CategoryDining},
			{Pattern: `swiss\s?chalet`, Category: models.CategoryDining},
			{Pattern: `boston\s?pizza`, Category: models.CategoryDining},
			{Pattern: `the\s?keg`, Category: models.CategoryDining},
			{Pattern: `restaurant`, Category: models.CategoryDining},
			{Pattern: `cafe|café`, Category: models.CategoryDining},

			// Transit
			{Pattern: `uber`, Category: models.CategoryTransit},
			{Pattern: `lyft`, Category: models.CategoryTransit},
			{Pattern: `presto`, Category: models.CategoryTransit},
			{Pattern: `ttc`, Category: models.CategoryTransit},
			{Pattern: `stm`, Category: models.CategoryTransit},
			{Pattern: `translink`, Category: models.CategoryTransit},
			{Pattern: `go\s?transit`, Category: models.CategoryTransit},

			// Recurring subscriptions and telecom
			{Pattern: `netflix`, Category: models.CategoryRecurring},
			{Pattern: `spotify`, Category: models.CategoryRecurring},
			{Pattern: `apple\.com`, Category: models.CategoryRecurring},
			{Pattern: `google\s?\*|google\s?play`, Category: models.CategoryRecurring},
			{Pattern: `amazon\s?prime`, Category: models.CategoryRecurring},
			{Pattern: `disney\+|disneyplus`, Category: models.CategoryRecurring},
			{Pattern: `rogers`, Category: models.CategoryRecurring},
			{Pattern: `bell\s?(canada|mobility)?`, Category: models.CategoryRecurring},
			{Pattern: `telus`, Category: models.CategoryRecurring},
			{Pattern: `fido`, Category: models.CategoryRecurring},
			{Pattern: `koodo`, Category: models.CategoryRecurring},
			{Pattern: `freedom\s?mobile`, Category: models.CategoryRecurring},

			// Travel
			{Pattern: `air\s?canada`, Category: models.CategoryTravel},
			{Pattern: `westjet`, Category: models.CategoryTravel},
			{Pattern: `expedia`, Category: models.CategoryTravel},
			{Pattern: `booking\.com`, Category: models.CategoryTravel},
			{Pattern: `airbnb`, Category: models.CategoryTravel},
			{Pattern: `hotel`, Category: models.CategoryTravel},
			{Pattern: `marriott`, Category: models.CategoryTravel},
			{Pattern: `hilton`, Category: models.CategoryTravel},

			// Entertainment
			{Pattern: `cineplex`, Category: models.CategoryEntertainment},
			{Pattern: `landmark\s?cinema`, Category: models.CategoryEntertainment},
			{Pattern: `ticketmaster`, Category: models.CategoryEntertainment},

			// General shopping, intentionally broad and checked last
			{Pattern: `amazon\.ca|amzn`, Category: models.CategoryShopping},
			{Pattern: `best\s?buy`, Category: models.CategoryShopping},
			{Pattern: `canadian\s?tire`, Category: models.CategoryShopping},
			{Pattern: `home\s?depot`, Category: models.CategoryShopping},
			{Pattern: `ikea`, Category: models.CategoryShopping},
			{Pattern: `shoppers\s?drug`, Category: models.CategoryShopping},
		},
	}
}
