package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ArticleMetrics/internal/batch"
	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/infrastructure/docstore"
	"ArticleMetrics/internal/lexicon"
	"ArticleMetrics/internal/metrics"
	"ArticleMetrics/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Input        ports.InputSource
	Acquirer     ports.DocumentAcquirer
	Store        ports.DocumentStore
	Runner       *batch.Runner
	Report       ports.ReportWriter
	Repository   ports.MetricRepository
	Notifier     ports.Notifier
	Lexicon      *lexicon.Lexicon
	Logger       *slog.Logger
	SkipExisting bool
}

// Pipeline implements the acquire-analyze-report workflow.
type Pipeline struct {
	input        ports.InputSource
	acquirer     ports.DocumentAcquirer
	store        ports.DocumentStore
	runner       *batch.Runner
	report       ports.ReportWriter
	repository   ports.MetricRepository
	notifier     ports.Notifier
	lexicon      *lexicon.Lexicon
	logger       *slog.Logger
	skipExisting bool
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		input:        deps.Input,
		acquirer:     deps.Acquirer,
		store:        deps.Store,
		runner:       deps.Runner,
		report:       deps.Report,
		repository:   deps.Repository,
		notifier:     deps.Notifier,
		lexicon:      deps.Lexicon,
		logger:       deps.Logger,
		skipExisting: deps.SkipExisting,
	}
}

// Run executes one full batch: read the input list, acquire any document
// text not yet on disk, analyze everything, write the report and fan the
// records out to the optional sinks. Acquisition errors never abort the
// batch; the affected documents surface in the failure list instead.
func (p *Pipeline) Run(ctx context.Context) error {
	docs, err := p.input.ReadInput()
	if err != nil {
		return fmt.Errorf("read input list: %w", err)
	}
	p.info("input list loaded", "documents", len(docs))

	p.acquireAll(ctx, docs)
	p.loadAll(docs)

	start := time.Now()
	records, failures := p.runner.RunAll(ctx, docs, p.lexicon)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.DocumentsAnalyzed.Add(float64(len(records)))
	metrics.MissingDocuments.Add(float64(len(failures)))

	p.info("batch analyzed", "records", len(records), "failures", len(failures))

	if err := p.report.Write(records); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if p.repository != nil {
		for _, rec := range records {
			if err := p.repository.SaveRecord(ctx, rec); err != nil {
				return fmt.Errorf("persist record %s: %w", rec.URLID, err)
			}
		}
	}

	if p.notifier != nil {
		summary := buildSummary(records, failures)
		if err := p.notifier.PublishSummary(ctx, summary); err != nil {
			p.warn("publish summary failed", "error", err)
		}
	}

	return nil
}

// acquireAll fetches text for every document not yet stored. Failures are
// logged and left for the batch runner to report.
func (p *Pipeline) acquireAll(ctx context.Context, docs []domain.Document) {
	if p.acquirer == nil {
		return
	}

	for _, doc := range docs {
		if p.skipExisting && p.store.Exists(doc.URLID) {
			continue
		}

		text, err := p.acquirer.Acquire(ctx, doc)
		if err != nil {
			p.warn("acquisition failed", "url_id", doc.URLID, "url", doc.URL, "error", err)
			continue
		}
		if err := p.store.Write(doc.URLID, text); err != nil {
			p.warn("store document failed", "url_id", doc.URLID, "error", err)
		}
	}
}

// loadAll fills each document with its stored text, marking the ones that
// were never acquired.
func (p *Pipeline) loadAll(docs []domain.Document) {
	for i := range docs {
		text, err := p.store.Read(docs[i].URLID)
		if err != nil {
			if errors.Is(err, docstore.ErrMissingDocument) {
				docs[i].Missing = true
				continue
			}
			p.warn("read document failed", "url_id", docs[i].URLID, "error", err)
			docs[i].Missing = true
			continue
		}
		docs[i].Text = text
	}
}

func buildSummary(records []domain.MetricRecord, failures []domain.Failure) string {
	summary := fmt.Sprintf("Text analysis run finished: %d documents analyzed, %d failed.", len(records), len(failures))
	for _, f := range failures {
		summary += fmt.Sprintf("\n- %s: %s", f.URLID, f.Reason)
	}
	return summary
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
