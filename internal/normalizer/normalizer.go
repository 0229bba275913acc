// Package normalizer converts raw tabular statement rows into canonical
// transactions, resolving column roles from heterogeneous header names.
package normalizer

import (
	"fmt"
	"regexp"

	"cardmatch/internal/classifier"
	"cardmatch/internal/logging"
	"cardmatch/internal/models"
)

// Column-role patterns. Source tables use wildly different header names,
// so each role is matched independently and the first matching header wins.
var (
	datePattern        = regexp.MustCompile(`(?i)date|posted|transaction\s?date`)
	descriptionPattern = regexp.MustCompile(`(?i)description|merchant|payee|name|memo`)
	amountPattern      = regexp.MustCompile(`(?i)amount|debit|credit|value`)
)

// Row is one raw statement record keyed by column header.
type Row map[string]string

// Columns names the headers resolved for each role. An empty name means
// the role could not be resolved.
type Columns struct {
	Date        string
	Description string
	Amount      string
}

// ResolveColumns identifies the date, description and amount columns from
// the headers present in a source table.
func ResolveColumns(headers []string) Columns {
	var cols Columns
	for _, h := range headers {
		if cols.Date == "" && datePattern.MatchString(h) {
			cols.Date = h
		}
		if cols.Description == "" && descriptionPattern.MatchString(h) {
			cols.Description = h
		}
		if cols.Amount == "" && amountPattern.MatchString(h) {
			cols.Amount = h
		}
	}
	return cols
}

// Normalizer turns raw rows into classified transactions.
type Normalizer struct {
	classifier *classifier.Classifier
	logger     logging.Logger
}

// New creates a Normalizer using the given classifier.
func New(c *classifier.Classifier, logger logging.Logger) *Normalizer {
	return &Normalizer{classifier: c, logger: logger}
}

// Normalize converts rows into canonical transactions. Unresolvable column
// roles degrade to empty/zero values rather than failing, and rows whose
// cleansed amount is not strictly positive are dropped. Every retained row
// yields exactly one transaction with classification applied.
func (n *Normalizer) Normalize(rows []Row, headers []string) []models.Transaction {
	cols := ResolveColumns(headers)

	if cols.Date == "" || cols.Description == "" || cols.Amount == "" {
		n.logger.WithFields(
			logging.Field{Key: "date_column", Value: cols.Date},
			logging.Field{Key: "description_column", Value: cols.Description},
			logging.Field{Key: "amount_column", Value: cols.Amount},
		).Warn("Could not identify all column roles, continuing with defaults")
	}

	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		description := row[cols.Description]

		rawAmount := row[cols.Amount]
		if rawAmount == "" {
			rawAmount = "0"
		}

		// Sign is not semantically interpreted: debit and credit columns
		// vary by bank, so every nonzero amount is treated as spend.
		amount := models.ParseAmount(rawAmount).Abs()
		if !amount.IsPositive() {
			continue
		}

		result := n.classifier.Classify(description)

		transactions = append(transactions, models.Transaction{
			ID:                 fmt.Sprintf("tx-%d", i),
			Date:               row[cols.Date],
			Description:        description,
			Amount:             amount,
			Category:           result.Category,
			IsAmbiguous:        result.IsAmbiguous,
			PossibleCategories: result.PossibleCategories,
		})
	}

	n.logger.WithFields(
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "transactions", Value: len(transactions)},
	).Info("Normalized statement rows")

	return transactions
}
