// Package extract implements the Extractor interface.
// Readability does the heavy lifting; when it cannot isolate an article, a
// goquery fallback strips noise elements and takes the best content
// container (<main>, <article>, or <body>).
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/ragpipe/core"
	readability "github.com/go-shiori/go-readability"
)

// noiseSelectors are HTML elements removed before fallback extraction.
// These contribute no meaningful content to the page text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	".breadcrumb", ".comments", ".related", ".share",
}

// ArticleExtractor isolates the primary article content from a full page.
type ArticleExtractor struct{}

// New creates an ArticleExtractor.
func New() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract returns the article title and a cleaned HTML fragment containing
// only the main content.
func (e *ArticleExtractor) Extract(html string, pageURL string) (*core.ExtractResult, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing page URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		return &core.ExtractResult{
			Title:       article.Title,
			ContentHTML: article.Content,
		}, nil
	}

	return e.fallback(html)
}

// fallback strips noise elements and returns the best content container.
func (e *ArticleExtractor) fallback(html string) (*core.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// <main> is the most semantically correct container, then <article>,
	// then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}

	return &core.ExtractResult{Title: title, ContentHTML: fragment}, nil
}
