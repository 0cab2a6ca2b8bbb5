package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/ports"
)

// outputHeader fixes the column order expected by report consumers.
var outputHeader = []string{
	"URL_ID",
	"URL",
	"POSITIVE SCORE",
	"NEGATIVE SCORE",
	"POLARITY SCORE",
	"SUBJECTIVITY SCORE",
	"AVG SENTENCE LENGTH",
	"PERCENTAGE OF COMPLEX WORDS",
	"FOG INDEX",
	"AVG NUMBER OF WORDS PER SENTENCE",
	"COMPLEX WORD COUNT",
	"WORD COUNT",
	"SYLLABLE PER WORD",
	"PERSONAL PRONOUNS",
	"AVG WORD LENGTH",
}

// CSVWriter writes the metric table to a CSV file.
type CSVWriter struct {
	path string
}

var _ ports.ReportWriter = (*CSVWriter)(nil)

// NewCSVWriter wires the output file path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write serializes all records in input order under the fixed header.
func (w *CSVWriter) Write(records []domain.MetricRecord) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", w.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(outputHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.URLID,
			rec.URL,
			strconv.Itoa(rec.PositiveScore),
			strconv.Itoa(rec.NegativeScore),
			formatFloat(rec.PolarityScore),
			formatFloat(rec.SubjectivityScore),
			formatFloat(rec.AvgSentenceLength),
			formatFloat(rec.PercentageComplexWords),
			formatFloat(rec.FogIndex),
			formatFloat(rec.AvgWordsPerSentence),
			strconv.Itoa(rec.ComplexWordCount),
			strconv.Itoa(rec.WordCount),
			formatFloat(rec.SyllablesPerWord),
			strconv.Itoa(rec.PersonalPronouns),
			formatFloat(rec.AvgWordLength),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", rec.URLID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
