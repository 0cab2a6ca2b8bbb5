package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ArticleMetrics/internal/batch"
	"ArticleMetrics/internal/config"
	"ArticleMetrics/internal/extract"
	"ArticleMetrics/internal/infrastructure/docstore"
	"ArticleMetrics/internal/infrastructure/report"
	"ArticleMetrics/internal/infrastructure/scraper"
	"ArticleMetrics/internal/infrastructure/storage"
	"ArticleMetrics/internal/infrastructure/telegram"
	"ArticleMetrics/internal/lexicon"
	"ArticleMetrics/internal/logging"
	"ArticleMetrics/internal/metrics"
	"ArticleMetrics/internal/ports"
	"ArticleMetrics/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	closers  []func() error
}

// New builds a runnable application instance. Lexicon loading failures are
// fatal here, before any document is touched.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.File)
	}

	lex, err := lexicon.Load(cfg.Lexicon.StopwordsDir, cfg.Lexicon.DictionaryDir)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	baseLogger.Info("lexicon loaded",
		"stopwords", len(lex.Stopwords),
		"positive", len(lex.Positive),
		"negative", len(lex.Negative))

	registry := extract.NewRegistry()
	registry.Register(&extract.BlogExtractor{})
	registry.Register(&extract.GenericExtractor{})

	extractor, err := registry.Resolve(cfg.Scraper.Extractor)
	if err != nil {
		return nil, fmt.Errorf("configure extractor: %w", err)
	}

	acquirer := scraper.New(
		time.Duration(cfg.Scraper.Timeout),
		time.Duration(cfg.Scraper.Delay),
		cfg.Scraper.UserAgent,
		extractor,
		baseLogger.With("component", "scraper"),
	)

	store := docstore.New(cfg.Scraper.ArticlesDir)
	runner := batch.New(cfg.Batch.Workers, baseLogger.With("component", "batch"))

	app := &Application{cfg: cfg, logger: baseLogger}

	var repository ports.MetricRepository
	if cfg.Database.DSN != "" {
		db, err := storage.Open(cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		app.closers = append(app.closers, db.Close)
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(
			cfg.Notifications.Telegram.BotToken,
			cfg.Notifications.Telegram.ChatID,
		)
	}

	app.pipeline = usecase.NewPipeline(usecase.PipelineDeps{
		Input:        report.NewInputReader(cfg.Input.Path),
		Acquirer:     acquirer,
		Store:        store,
		Runner:       runner,
		Report:       report.NewCSVWriter(cfg.Output.Path),
		Repository:   repository,
		Notifier:     notifier,
		Lexicon:      lex,
		Logger:       baseLogger.With("component", "pipeline"),
		SkipExisting: cfg.Scraper.SkipExisting,
	})

	return app, nil
}

// Run executes a single batch to completion.
func (a *Application) Run(ctx context.Context) error {
	if a.cfg.Metrics.ListenAddr != "" {
		go metrics.Expose(a.cfg.Metrics.ListenAddr)
	}

	err := a.pipeline.Run(ctx)

	for _, closeFn := range a.closers {
		if cErr := closeFn(); cErr != nil {
			a.logger.Warn("close resource failed", "error", cErr)
		}
	}

	return err
}
