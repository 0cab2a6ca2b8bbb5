// Package report handles the tabular boundary of the pipeline: the input
// URL list and the final metric table.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/ports"
)

// InputReader loads the document list from a CSV file with URL_ID and URL
// columns, located by header name so extra columns are tolerated.
type InputReader struct {
	path string
}

var _ ports.InputSource = (*InputReader)(nil)

// NewInputReader wires the input file path.
func NewInputReader(path string) *InputReader {
	return &InputReader{path: path}
}

// ReadInput parses the list. Rows without an identifier are skipped.
func (r *InputReader) ReadInput() ([]domain.Document, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input list %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse input list %s: %w", r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input list %s is empty", r.path)
	}

	idCol, urlCol := -1, -1
	for i, name := range rows[0] {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case "URL_ID":
			idCol = i
		case "URL":
			urlCol = i
		}
	}
	if idCol < 0 || urlCol < 0 {
		return nil, fmt.Errorf("input list %s: header must contain URL_ID and URL columns", r.path)
	}

	docs := make([]domain.Document, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idCol >= len(row) || urlCol >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		docs = append(docs, domain.Document{
			URLID: id,
			URL:   strings.TrimSpace(row[urlCol]),
		})
	}

	return docs, nil
}
