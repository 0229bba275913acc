// Package report serializes recommendation runs for export.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recommendation is one complete ranking run: the options it was computed
// under, the profile's grand total, and the ordered results.
type Recommendation struct {
	ReportID             string                `json:"reportId"`
	GeneratedAt          time.Time             `json:"generatedAt"`
	Years                int                   `json:"years"`
	WelcomeBonusIncluded bool                  `json:"welcomeBonusIncluded"`
	GrandTotal           decimal.Decimal       `json:"grandTotal"`
	Results              []models.ScoredResult `json:"results"`
}

// NewRecommendation creates a Recommendation with a generated ID and
// timestamp.
func NewRecommendation(spendProfile models.SpendProfile, results []models.ScoredResult, years int, bonusIncluded bool) *Recommendation {
	return &Recommendation{
		ReportID:             uuid.New().String(),
		GeneratedAt:          time.Now(),
		Years:                years,
		WelcomeBonusIncluded: bonusIncluded,
		GrandTotal:           spendProfile.GrandTotal,
		Results:              results,
	}
}

// Generator renders recommendations in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate renders a recommendation as "json" or "csv". CSV output carries
// the result rows only; run metadata is JSON-only.
func (g *Generator) Generate(rec *Recommendation, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "csv":
		data, err := gocsv.MarshalBytes(&rec.Results)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
