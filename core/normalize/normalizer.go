// Package normalize implements the Normalizer interface.
// It converts extracted HTML into Markdown, the canonical format for all
// downstream enrichment, resolving relative links against the source URL.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
)

var (
	imageRegex    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRegex     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	autoLinkRegex = regexp.MustCompile(`<(https?://[^>]+)>`)
	blankRunRegex = regexp.MustCompile(`\n{3,}`)
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	// IncludeLinks keeps markdown link syntax. When false, links are reduced
	// to their text before the markdown reaches scoring and chunking.
	IncludeLinks bool
}

// New creates a MarkdownNormalizer.
func New(includeLinks bool) *MarkdownNormalizer {
	return &MarkdownNormalizer{IncludeLinks: includeLinks}
}

// Normalize converts an extracted HTML fragment into clean Markdown.
// Relative hrefs and srcs are made absolute against pageURL.
func (n *MarkdownNormalizer) Normalize(html string, pageURL string) (string, error) {
	var opts []converter.ConvertOptionFunc
	if pageURL != "" {
		opts = append(opts, converter.WithDomain(pageURL))
	}

	markdown, err := htmltomarkdown.ConvertString(html, opts...)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	if !n.IncludeLinks {
		markdown = stripLinks(markdown)
	}

	return cleanup(markdown), nil
}

// stripLinks reduces link and image syntax to its visible text.
func stripLinks(markdown string) string {
	markdown = imageRegex.ReplaceAllString(markdown, "$1")
	markdown = linkRegex.ReplaceAllString(markdown, "$1")
	return autoLinkRegex.ReplaceAllString(markdown, "$1")
}

// cleanup collapses runs of blank lines to a single blank line and trims
// surrounding whitespace. Paragraph separation is preserved: the chunker
// splits on blank lines.
func cleanup(markdown string) string {
	markdown = blankRunRegex.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
