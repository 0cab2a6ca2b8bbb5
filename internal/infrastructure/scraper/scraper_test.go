package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/extract"
)

const articleHTML = `
<html>
  <head><title>Fallback Title</title></head>
  <body>
    <header><nav><p>Menu item</p></nav></header>
    <h1 class="entry-title">Rising Markets Explained</h1>
    <div class="td-post-content">
      <script>var tracking = true;</script>
      <p>Markets rose sharply on Monday.</p>
      <p>Analysts remain cautiously optimistic.</p>
    </div>
    <footer><p>Copyright</p></footer>
  </body>
</html>`

func TestAcquireExtractsTitleAndBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "ArticleMetrics/1.0" {
			t.Errorf("unexpected user agent: %s", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	s := New(0, 0, "ArticleMetrics/1.0", &extract.BlogExtractor{}, nil)
	s.client = server.Client()

	text, err := s.Acquire(context.Background(), domain.Document{URLID: "doc-1", URL: server.URL})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if !strings.HasPrefix(text, "Rising Markets Explained\n\n") {
		t.Fatalf("text should start with the title, got %q", text)
	}
	if !strings.Contains(text, "Markets rose sharply on Monday.") {
		t.Fatalf("body paragraph missing: %q", text)
	}
	if !strings.Contains(text, "Analysts remain cautiously optimistic.") {
		t.Fatalf("second paragraph missing: %q", text)
	}
	if strings.Contains(text, "tracking") || strings.Contains(text, "Menu item") {
		t.Fatalf("chrome should be stripped: %q", text)
	}
}

func TestAcquireBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	s := New(0, 0, "ArticleMetrics/1.0", &extract.BlogExtractor{}, nil)
	s.client = server.Client()

	if _, err := s.Acquire(context.Background(), domain.Document{URLID: "doc-404", URL: server.URL}); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

func TestAcquireRejectsNonHTML(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	s := New(0, 0, "ArticleMetrics/1.0", &extract.BlogExtractor{}, nil)
	s.client = server.Client()

	if _, err := s.Acquire(context.Background(), domain.Document{URLID: "doc-pdf", URL: server.URL}); err == nil {
		t.Fatalf("expected error for non-HTML content type")
	}
}
