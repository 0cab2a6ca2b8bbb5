package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestBlogExtractorTitleFallbackChain(t *testing.T) {
	t.Parallel()

	e := &BlogExtractor{}

	doc := parse(t, `<html><head><title>Tab Title</title></head><body><h1>Plain Heading</h1><p>Body.</p></body></html>`)
	title, _ := e.Extract(doc)
	if title != "Plain Heading" {
		t.Fatalf("expected h1 fallback, got %q", title)
	}

	doc = parse(t, `<html><head><title>Tab Title</title></head><body><p>Body.</p></body></html>`)
	title, _ = e.Extract(doc)
	if title != "Tab Title" {
		t.Fatalf("expected title-tag fallback, got %q", title)
	}
}

func TestBlogExtractorParagraphFallback(t *testing.T) {
	t.Parallel()

	e := &BlogExtractor{}
	doc := parse(t, `<html><body>
		<h1 class="entry-title">Heading</h1>
		<p>First stray paragraph.</p>
		<p>Second stray paragraph.</p>
	</body></html>`)

	_, body := e.Extract(doc)
	want := "First stray paragraph.\n\nSecond stray paragraph."
	if body != want {
		t.Fatalf("expected all-paragraph fallback, got %q", body)
	}
}

func TestGenericExtractor(t *testing.T) {
	t.Parallel()

	e := &GenericExtractor{}
	doc := parse(t, `<html><head><title>Some Page</title></head><body>
		<script>ignore();</script>
		<div>Hello   there
		world</div>
	</body></html>`)

	title, body := e.Extract(doc)
	if title != "Some Page" {
		t.Fatalf("unexpected title: %q", title)
	}
	if body != "Hello there world" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(&BlogExtractor{})

	if _, err := reg.Resolve("blog"); err != nil {
		t.Fatalf("resolve blog: %v", err)
	}
	if _, err := reg.Resolve("unknown"); err == nil {
		t.Fatalf("expected error for unknown extractor")
	}
}
