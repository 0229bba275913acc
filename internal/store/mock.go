package store

import "cardmatch/internal/models"

// MockStore is an in-memory stand-in for Store used in tests.
type MockStore struct {
	Rules       models.RulesConfig
	Cards       []models.Card
	Corrections map[string]models.Category

	RulesErr       error
	CardsErr       error
	CorrectionsErr error
}

// LoadRules returns the configured rules or error.
func (m *MockStore) LoadRules() (models.RulesConfig, error) {
	if m.RulesErr != nil {
		return models.RulesConfig{}, m.RulesErr
	}
	return m.Rules, nil
}

// LoadCards returns the configured catalog or error.
func (m *MockStore) LoadCards() ([]models.Card, error) {
	if m.CardsErr != nil {
		return nil, m.CardsErr
	}
	return m.Cards, nil
}

// LoadCorrections returns the configured corrections or error.
func (m *MockStore) LoadCorrections() (map[string]models.Category, error) {
	if m.CorrectionsErr != nil {
		return nil, m.CorrectionsErr
	}
	if m.Corrections == nil {
		return map[string]models.Category{}, nil
	}
	return m.Corrections, nil
}
