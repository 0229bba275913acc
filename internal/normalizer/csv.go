package normalizer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cardmatch/internal/logging"
)

// LoadRows reads a statement CSV with arbitrary headers into string-keyed
// rows, preserving header order for column-role resolution. Malformed rows
// are skipped rather than aborting the batch.
//
// encoding/csv is used directly here instead of gocsv because gocsv maps
// columns onto struct tags, and statement headers are unknown until read.
func LoadRows(path string, delimiter rune, logger logging.Logger) ([]Row, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close statement file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("statement file is empty: %s", path)
		}
		return nil, nil, fmt.Errorf("error reading statement header: %w", err)
	}

	var rows []Row
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			logger.WithError(err).Debug("Skipping malformed statement row")
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "skipped", Value: skipped},
	).Info("Read statement file")

	return rows, headers, nil
}
