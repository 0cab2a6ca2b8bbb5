package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/ports"
)

// PostgresRepository persists metric records into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.MetricRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Open connects to Postgres and pings it so misconfiguration fails fast.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// SaveRecord upserts the metric snapshot for one document. Re-running the
// batch overwrites the previous values for the same URL_ID.
func (r *PostgresRepository) SaveRecord(ctx context.Context, rec domain.MetricRecord) error {
	if r.db == nil {
		return nil
	}

	query, args, err := r.builder.
		Insert("metric_records").
		Columns(
			"url_id", "url",
			"positive_score", "negative_score", "polarity_score", "subjectivity_score",
			"avg_sentence_length", "percentage_complex_words", "fog_index",
			"avg_words_per_sentence", "complex_word_count", "word_count",
			"syllables_per_word", "personal_pronouns", "avg_word_length",
		).
		Values(
			rec.URLID, rec.URL,
			rec.PositiveScore, rec.NegativeScore, rec.PolarityScore, rec.SubjectivityScore,
			rec.AvgSentenceLength, rec.PercentageComplexWords, rec.FogIndex,
			rec.AvgWordsPerSentence, rec.ComplexWordCount, rec.WordCount,
			rec.SyllablesPerWord, rec.PersonalPronouns, rec.AvgWordLength,
		).
		Suffix(`ON CONFLICT (url_id) DO UPDATE SET
			url = EXCLUDED.url,
			positive_score = EXCLUDED.positive_score,
			negative_score = EXCLUDED.negative_score,
			polarity_score = EXCLUDED.polarity_score,
			subjectivity_score = EXCLUDED.subjectivity_score,
			avg_sentence_length = EXCLUDED.avg_sentence_length,
			percentage_complex_words = EXCLUDED.percentage_complex_words,
			fog_index = EXCLUDED.fog_index,
			avg_words_per_sentence = EXCLUDED.avg_words_per_sentence,
			complex_word_count = EXCLUDED.complex_word_count,
			word_count = EXCLUDED.word_count,
			syllables_per_word = EXCLUDED.syllables_per_word,
			personal_pronouns = EXCLUDED.personal_pronouns,
			avg_word_length = EXCLUDED.avg_word_length,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert record %s: %w", rec.URLID, err)
	}

	return nil
}
