// Package scraper acquires article text for documents over HTTP.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/abadojack/whatlanggo"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/extract"
	"ArticleMetrics/internal/metrics"
	"ArticleMetrics/internal/ports"
)

const snippetWords = 100

// Scraper fetches article pages and extracts their title and body text.
type Scraper struct {
	client    *http.Client
	extractor extract.Extractor
	userAgent string
	delay     time.Duration
	logger    *slog.Logger
}

var _ ports.DocumentAcquirer = (*Scraper)(nil)

// New wires an HTTP client with the given timeout and an extraction strategy.
func New(timeout, delay time.Duration, userAgent string, extractor extract.Extractor, logger *slog.Logger) *Scraper {
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		extractor: extractor,
		userAgent: userAgent,
		delay:     delay,
		logger:    logger,
	}
}

// Acquire downloads one article and returns its stored text form: title,
// blank line, body. A crawl delay is applied after each fetch to stay polite
// with the source host.
func (s *Scraper) Acquire(ctx context.Context, doc domain.Document) (string, error) {
	page, err := s.fetchDocument(ctx, doc.URL)
	if err != nil {
		metrics.FetchFailures.Inc()
		return "", err
	}
	metrics.DocumentsFetched.Inc()

	title, body := s.extractor.Extract(page)
	s.tagLanguage(doc, title, body)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return title + "\n\n" + body, nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "html") {
		return nil, fmt.Errorf("content type %s is not HTML", contentType)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// tagLanguage detects the page language from the title plus a body snippet
// and warns on non-English pages; the analysis heuristics are English-only.
func (s *Scraper) tagLanguage(doc domain.Document, title, body string) {
	words := strings.Fields(body)
	if len(words) > snippetWords {
		words = words[:snippetWords]
	}
	sample := strings.TrimSpace(title + " " + strings.Join(words, " "))
	if sample == "" {
		return
	}

	info := whatlanggo.Detect(sample)
	if lang := info.Lang.Iso6393(); lang != "eng" && s.logger != nil {
		s.logger.Warn("document does not look English", "url_id", doc.URLID, "language", lang)
	}
}
