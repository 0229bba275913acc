package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"cardmatch/internal/logging"
	"cardmatch/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteTransactionsCSV writes normalized transactions to a CSV file so
// users can inspect how their statement was categorized.
func WriteTransactionsCSV(transactions []models.Transaction, path string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(transactions)},
	).Info("Wrote transactions to CSV file")

	return nil
}
