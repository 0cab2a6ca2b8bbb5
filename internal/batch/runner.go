// Package batch fans the metric calculation out over a document list.
package batch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"ArticleMetrics/internal/analysis"
	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/lexicon"
)

// Runner applies the metric calculation to every document independently.
// Documents share nothing but the read-only lexicon, so they can be analyzed
// in parallel without locking.
type Runner struct {
	workers int
	logger  *slog.Logger
}

// New builds a runner with a bounded worker pool; workers below 1 run serially.
func New(workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, logger: logger}
}

// RunAll analyzes every document and returns one record per acquired
// document plus a failure entry for each document whose text was never
// acquired. Output order always matches input order regardless of worker
// scheduling: results land in an index-addressed slice. A document with
// empty text still yields a (zero-valued) record, never a failure. When ctx
// is cancelled mid-batch no further documents are scheduled; the unanalyzed
// ones come back as failures.
func (r *Runner) RunAll(ctx context.Context, docs []domain.Document, lex *lexicon.Lexicon) ([]domain.MetricRecord, []domain.Failure) {
	results := make([]domain.MetricRecord, len(docs))
	scheduled := make([]bool, len(docs))

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, doc := range docs {
		if doc.Missing {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		scheduled[i] = true
		i, doc := i, doc
		g.Go(func() error {
			results[i] = analysis.Analyze(doc, lex)
			return nil
		})
	}
	_ = g.Wait()

	records := make([]domain.MetricRecord, 0, len(docs))
	var failures []domain.Failure
	for i, doc := range docs {
		if doc.Missing {
			if r.logger != nil {
				r.logger.Warn("document missing from acquisition output", "url_id", doc.URLID, "url", doc.URL)
			}
			failures = append(failures, domain.Failure{
				URLID:  doc.URLID,
				URL:    doc.URL,
				Reason: "no text acquired for document",
			})
			continue
		}
		if !scheduled[i] {
			failures = append(failures, domain.Failure{
				URLID:  doc.URLID,
				URL:    doc.URL,
				Reason: "analysis skipped: " + ctx.Err().Error(),
			})
			continue
		}
		records = append(records, results[i])
	}

	return records, failures
}
