// Package classifier maps free-text merchant descriptions to spending
// categories, flagging merchants that need user disambiguation.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"
)

// RuleSource provides a classifier rule set, usually from a YAML store.
type RuleSource interface {
	LoadRules() (models.RulesConfig, error)
}

// Result is the outcome of classifying one merchant description.
type Result struct {
	Category           models.Category
	IsAmbiguous        bool
	PossibleCategories []models.Category
}

type ambiguousRule struct {
	re         *regexp.Regexp
	categories []models.Category
}

type definiteRule struct {
	re       *regexp.Regexp
	category models.Category
}

// Classifier matches descriptions against an ordered rule set. Matching is
// case-insensitive and purely a function of the input: identical
// descriptions always classify identically.
type Classifier struct {
	ambiguous []ambiguousRule
	definite  []definiteRule
	logger    logging.Logger
}

// New creates a classifier with the built-in default rule set.
func New(logger logging.Logger) *Classifier {
	c, err := NewFromConfig(DefaultRules(), logger)
	if err != nil {
		// The built-in rules are compile-checked by tests.
		panic(fmt.Sprintf("built-in classifier rules are invalid: %v", err))
	}
	return c
}

// NewFromConfig creates a classifier from an explicit rule set. Rules with
// patterns that fail to compile are skipped with a warning so that one bad
// entry in a user-supplied file does not reject the whole set.
func NewFromConfig(cfg models.RulesConfig, logger logging.Logger) (*Classifier, error) {
	c := &Classifier{logger: logger}

	for _, rule := range cfg.Ambiguous {
		re, err := compilePattern(rule.Pattern)
		if err != nil {
			logger.WithError(err).Warn("Skipping ambiguous rule with invalid pattern",
				logging.Field{Key: "pattern", Value: rule.Pattern})
			continue
		}
		if len(rule.Categories) == 0 {
			logger.Warn("Skipping ambiguous rule without candidate categories",
				logging.Field{Key: "pattern", Value: rule.Pattern})
			continue
		}
		c.ambiguous = append(c.ambiguous, ambiguousRule{re: re, categories: rule.Categories})
	}

	for _, rule := range cfg.Definite {
		re, err := compilePattern(rule.Pattern)
		if err != nil {
			logger.WithError(err).Warn("Skipping definite rule with invalid pattern",
				logging.Field{Key: "pattern", Value: rule.Pattern})
			continue
		}
		c.definite = append(c.definite, definiteRule{re: re, category: rule.Category})
	}

	if len(c.ambiguous) == 0 && len(c.definite) == 0 && !cfg.Empty() {
		return nil, fmt.Errorf("no usable rules: all %d patterns failed to compile",
			len(cfg.Ambiguous)+len(cfg.Definite))
	}

	return c, nil
}

// NewFromStore creates a classifier with rules loaded from a store,
// falling back to the built-in rule set when the store has none.
func NewFromStore(src RuleSource, logger logging.Logger) *Classifier {
	cfg, err := src.LoadRules()
	if err != nil {
		logger.WithError(err).Warn("Failed to load classifier rules, using built-in rules")
		return New(logger)
	}
	if cfg.Empty() {
		return New(logger)
	}

	c, err := NewFromConfig(cfg, logger)
	if err != nil {
		logger.WithError(err).Warn("Loaded rules unusable, using built-in rules")
		return New(logger)
	}
	return c
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

// Classify maps a merchant description to a category. Ambiguous rules are
// checked first so a merchant matching both an ambiguous and a definite
// pattern always resolves to the ambiguous result. Unmatched descriptions
// fall back to the "other" category.
func (c *Classifier) Classify(description string) Result {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return Result{Category: models.CategoryOther}
	}

	for _, rule := range c.ambiguous {
		if rule.re.MatchString(desc) {
			c.logger.WithFields(
				logging.Field{Key: "description", Value: description},
				logging.Field{Key: "candidates", Value: rule.categories},
			).Debug("Merchant matched ambiguous rule")

			return Result{
				Category:           rule.categories[0],
				IsAmbiguous:        true,
				PossibleCategories: rule.categories,
			}
		}
	}

	for _, rule := range c.definite {
		if rule.re.MatchString(desc) {
			return Result{Category: rule.category}
		}
	}

	return Result{Category: models.CategoryOther}
}
