// Package store loads and saves the application's YAML data files: the
// classifier rule set, the card catalog, and merchant corrections.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"

	"gopkg.in/yaml.v3"
)

// Store resolves and reads the YAML data files. Missing rule and
// correction files are not errors: callers receive empty values and fall
// back to built-in defaults.
type Store struct {
	RulesFile       string
	CardsFile       string
	CorrectionsFile string

	logger logging.Logger
}

// NewStore creates a store for the given file names. Relative names are
// resolved against standard locations at load time.
func NewStore(rulesFile, cardsFile, correctionsFile string, logger logging.Logger) *Store {
	return &Store{
		RulesFile:       rulesFile,
		CardsFile:       cardsFile,
		CorrectionsFile: correctionsFile,
		logger:          logger,
	}
}

// FindConfigFile looks for a data file in standard locations: the path
// itself, ./config/, and ~/.config/cardmatch/.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "cardmatch", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the classifier rule set from YAML. A missing file
// yields an empty config so the classifier can fall back to its built-in
// rules.
func (s *Store) LoadRules() (models.RulesConfig, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) || err == os.ErrNotExist {
			s.logger.WithField("file", filename).Debug("Rules file not found, using built-in rules")
			return models.RulesConfig{}, nil
		}
		return models.RulesConfig{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.RulesConfig{}, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules models.RulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return models.RulesConfig{}, fmt.Errorf("error parsing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "ambiguous", Value: len(rules.Ambiguous)},
		logging.Field{Key: "definite", Value: len(rules.Definite)},
	).Debug("Loaded classifier rules")

	return rules, nil
}

// LoadCards loads the card catalog from YAML. The file supports either a
// top-level "cards:" key or a bare list of card records.
func (s *Store) LoadCards() ([]models.Card, error) {
	filename := s.CardsFile
	if filename == "" {
		filename = "cards.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		return nil, fmt.Errorf("card catalog not found: %s", filename)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading card catalog: %w", err)
	}

	var config models.CardsConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Cards) > 0 {
		s.logger.WithFields(
			logging.Field{Key: "file", Value: filePath},
			logging.Field{Key: "count", Value: len(config.Cards)},
		).Debug("Loaded card catalog")
		return config.Cards, nil
	}

	// Fallback: bare list without the top-level key.
	var cards []models.Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("error parsing card catalog: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(cards)},
	).Debug("Loaded card catalog from bare list")

	return cards, nil
}

// LoadCorrections loads user category corrections from YAML. Keys are
// normalized merchant keys. A missing file yields an empty map.
func (s *Store) LoadCorrections() (map[string]models.Category, error) {
	filename := s.CorrectionsFile
	if filename == "" {
		filename = "corrections.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) || err == os.ErrNotExist {
			s.logger.WithField("file", filename).Debug("Corrections file not found")
			return map[string]models.Category{}, nil
		}
		return nil, fmt.Errorf("error resolving corrections file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading corrections file: %w", err)
	}

	var config models.CorrectionsConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Corrections) > 0 {
		return config.Corrections, nil
	}

	// Fallback: bare mapping without the top-level key.
	var corrections map[string]models.Category
	if err := yaml.Unmarshal(data, &corrections); err != nil {
		return nil, fmt.Errorf("error parsing corrections file: %w", err)
	}
	if corrections == nil {
		corrections = map[string]models.Category{}
	}

	return corrections, nil
}

// SaveCorrections writes a corrections map to YAML. This backs the
// verification workflow: ambiguous merchants are exported with their
// default guesses, edited by the user, and loaded back.
func (s *Store) SaveCorrections(corrections map[string]models.Category, path string) error {
	if path == "" {
		path = s.CorrectionsFile
	}
	if path == "" {
		path = "corrections.yaml"
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CorrectionsConfig{Corrections: corrections})
	if err != nil {
		return fmt.Errorf("error marshaling corrections: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing corrections: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(corrections)},
	).Debug("Saved corrections")

	return nil
}
