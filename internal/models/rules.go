package models

// DefiniteRule maps a case-insensitive merchant pattern to a single
// category. Rules are ordered by specificity: narrower merchant names
// precede broad catch-alls, and the first match wins.
type DefiniteRule struct {
	Pattern  string   `yaml:"pattern"`
	Category Category `yaml:"category"`
}

// AmbiguousRule maps a merchant pattern to an ordered set of candidate
// categories. The first candidate is the default guess.
type AmbiguousRule struct {
	Pattern    string     `yaml:"pattern"`
	Categories []Category `yaml:"categories"`
}

// RulesConfig is the structure of the classifier rules YAML file.
// Ambiguous rules are always evaluated before definite rules.
type RulesConfig struct {
	Ambiguous []AmbiguousRule `yaml:"ambiguous"`
	Definite  []DefiniteRule  `yaml:"definite"`
}

// Empty reports whether the config carries no rules at all.
func (c RulesConfig) Empty() bool {
	return len(c.Ambiguous) == 0 && len(c.Definite) == 0
}

// CorrectionsConfig is the structure of the corrections YAML file.
// Keys are normalized merchant keys (upper-cased, trimmed descriptions).
type CorrectionsConfig struct {
	Corrections map[string]Category `yaml:"corrections"`
}
