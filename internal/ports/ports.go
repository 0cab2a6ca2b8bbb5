package ports

import (
	"context"

	"ArticleMetrics/internal/domain"
)

// InputSource provides the list of documents to process (identifier + URL).
type InputSource interface {
	ReadInput() ([]domain.Document, error)
}

// DocumentAcquirer fetches the text content for one document URL.
type DocumentAcquirer interface {
	Acquire(ctx context.Context, doc domain.Document) (string, error)
}

// DocumentStore persists and serves the one-file-per-document text blobs.
type DocumentStore interface {
	Exists(urlID string) bool
	Read(urlID string) (string, error)
	Write(urlID, text string) error
}

// ReportWriter serializes the final metric table.
type ReportWriter interface {
	Write(records []domain.MetricRecord) error
}

// MetricRepository persists per-document metric records for later querying.
type MetricRepository interface {
	SaveRecord(ctx context.Context, record domain.MetricRecord) error
}

// Notifier publishes the end-of-run summary to an external channel.
type Notifier interface {
	PublishSummary(ctx context.Context, summary string) error
}
