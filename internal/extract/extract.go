// Package extract turns a parsed HTML page into the title/body text that is
// stored for analysis. Strategies are pluggable per site layout.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor captures a single extraction strategy for one site layout.
type Extractor interface {
	Name() string
	Extract(doc *goquery.Document) (title, body string)
}

// Registry keeps a mapping from extractor names to their implementations.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: map[string]Extractor{}}
}

// Register adds or replaces an extractor implementation.
func (r *Registry) Register(e Extractor) {
	if r.extractors == nil {
		r.extractors = map[string]Extractor{}
	}
	r.extractors[e.Name()] = e
}

// Resolve returns an extractor by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Extractor, error) {
	if e, ok := r.extractors[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("extractor %s is not registered", name)
}

// BlogExtractor handles WordPress-style article pages: it walks known title
// and content selectors in order and falls back to all paragraphs on the page.
type BlogExtractor struct{}

var _ Extractor = (*BlogExtractor)(nil)

// Name identifies the strategy inside the registry.
func (e *BlogExtractor) Name() string { return "blog" }

var (
	titleSelectors   = []string{"h1.entry-title", "h1.tdb-title-text", "h1", "title"}
	contentSelectors = []string{"div.td-post-content", "div.tdb-block-inner", "article", "div.entry-content"}
)

// Extract pulls the article title and the paragraph text of the main content
// block, stripping navigation chrome first.
func (e *BlogExtractor) Extract(doc *goquery.Document) (string, string) {
	var title string
	for _, sel := range titleSelectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			title = t
			break
		}
	}

	var content *goquery.Selection
	for _, sel := range contentSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			content = found
			break
		}
	}

	var body string
	if content != nil {
		content.Find("script, style, nav, footer, header").Remove()
		body = joinParagraphs(content.Find("p"))
	}
	if body == "" {
		body = joinParagraphs(doc.Find("p"))
	}

	return title, body
}

// GenericExtractor is the last-resort strategy: the <title> tag plus the
// whitespace-normalized text of the whole body.
type GenericExtractor struct{}

var _ Extractor = (*GenericExtractor)(nil)

// Name identifies the strategy inside the registry.
func (e *GenericExtractor) Name() string { return "generic" }

// Extract returns the page title and flattened body text.
func (e *GenericExtractor) Extract(doc *goquery.Document) (string, string) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("script, style, noscript").Remove()
	body := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	return title, body
}

func joinParagraphs(paragraphs *goquery.Selection) string {
	var parts []string
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}
