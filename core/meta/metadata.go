// Package meta derives page metadata from meta tags, structured data, and
// the source URL, and classifies the content type via an ordered rule table.
package meta

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gaurav-prasanna/ragpipe/core"
)

// Meta tag candidates for dates, in priority order.
var (
	publishDateKeys = []string{
		"article:published_time", "jsonld:datepublished",
		"date", "dc.date", "pubdate", "publish-date",
	}
	lastModifiedKeys = []string{
		"article:modified_time", "jsonld:datemodified", "last-modified",
	}
)

// docPathMarkers flag documentation sites by URL path.
var docPathMarkers = []string{
	"/docs", "/documentation", "/api", "/reference", "/manual", "/guide",
}

// denseCodeThreshold is the fenced-block count at which content is treated
// as documentation regardless of URL.
const denseCodeThreshold = 3

// signals feeds the content-type rule table.
type signals struct {
	host         string
	path         string
	meta         map[string]string
	fencedBlocks int
	author       string
	publishDate  string
}

// contentTypeRules is evaluated in order; the first match wins.
var contentTypeRules = []struct {
	label string
	match func(s signals) bool
}{
	{core.ContentTypeDocumentation, func(s signals) bool {
		for _, m := range docPathMarkers {
			if strings.Contains(s.path, m) {
				return true
			}
		}
		return s.fencedBlocks >= denseCodeThreshold
	}},
	{core.ContentTypeWiki, func(s signals) bool {
		return strings.Contains(s.host, "wiki") || strings.Contains(s.path, "/wiki")
	}},
	{core.ContentTypeProduct, func(s signals) bool {
		return strings.EqualFold(s.meta["jsonld:type"], "product") ||
			strings.EqualFold(s.meta["og:type"], "product")
	}},
	{core.ContentTypeBlog, func(s signals) bool {
		return s.publishDate != "" && s.author != ""
	}},
}

// Extract derives Metadata from a document's meta key-values and URL.
// fencedBlocks is the document's fenced code block count (a content signal
// for classification). Unparsable or missing values are dropped, never
// fabricated.
func Extract(doc core.Document, fencedBlocks int, now time.Time) core.Metadata {
	tags := doc.SourceMeta
	if tags == nil {
		tags = map[string]string{}
	}

	author := firstNonEmpty(tags["jsonld:author"], tags["author"])
	publishDate := firstDate(tags, publishDateKeys)

	host, path := splitURL(doc.URL)
	s := signals{
		host:         host,
		path:         strings.ToLower(path),
		meta:         tags,
		fencedBlocks: fencedBlocks,
		author:       author,
		publishDate:  publishDate,
	}

	return core.Metadata{
		URL:          doc.URL,
		Domain:       host,
		ScrapedAt:    now.UTC().Format(time.RFC3339),
		Author:       author,
		PublishDate:  publishDate,
		LastModified: firstDate(tags, lastModifiedKeys),
		Language:     language(tags),
		Keywords:     keywords(tags["keywords"]),
		Description:  firstNonEmpty(tags["description"], tags["og:description"]),
		ContentType:  classify(s),
	}
}

// classify walks the rule table in priority order.
func classify(s signals) string {
	for _, rule := range contentTypeRules {
		if rule.match(s) {
			return rule.label
		}
	}
	return core.ContentTypeGeneral
}

// firstDate returns the first candidate that parses, normalized to
// ISO-8601 UTC.
func firstDate(tags map[string]string, keys []string) string {
	for _, key := range keys {
		raw := strings.TrimSpace(tags[key])
		if raw == "" {
			continue
		}
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			continue
		}
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}

// language returns a two-letter lower-case code, or empty.
func language(tags map[string]string) string {
	for _, key := range []string{"lang", "language", "og:locale"} {
		v := strings.TrimSpace(tags[key])
		if len(v) >= 2 {
			return strings.ToLower(v[:2])
		}
	}
	return ""
}

// keywords parses a comma-separated keyword tag into a sorted, de-duplicated
// set. Empty entries are discarded.
func keywords(raw string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, part := range strings.Split(raw, ",") {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		result = append(result, kw)
	}
	sort.Strings(result)
	return result
}

// splitURL returns the lower-cased host and the path of a URL.
func splitURL(rawURL string) (string, string) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
