// Package crawl provides URL discovery for batch (--all) mode.
// It discovers internal pages via sitemap.xml and link extraction, keeping
// crawling logic separate from the enrichment pipeline.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/ragpipe/core"
)

// sitemapEntry holds one URL from a sitemap.xml.
type sitemapEntry struct {
	Loc string `xml:"loc"`
}

// sitemapFile covers both <urlset> and <sitemapindex> documents.
type sitemapFile struct {
	URLs     []sitemapEntry `xml:"url"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

// DiscoverAll finds internal URLs to process starting from baseURL, capped
// at maxPages. It tries sitemap.xml first, then falls back to BFS link
// crawling. The baseURL itself is always included.
func DiscoverAll(ctx context.Context, baseURL string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	domain := parsed.Host

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	urls, err := discoverFromSitemap(ctx, sitemapURL, domain, maxPages)
	if err == nil && len(urls) > 0 {
		return urls, nil
	}

	return discoverFromLinks(ctx, baseURL, domain, fetcher, maxPages)
}

// discoverFromSitemap fetches and parses sitemap.xml for internal URLs,
// following one level of sitemap index nesting.
func discoverFromSitemap(ctx context.Context, sitemapURL string, domain string, maxPages int) ([]string, error) {
	sm, err := fetchSitemap(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier()
	collect := func(entries []sitemapEntry) {
		for _, e := range entries {
			if frontier.Visited() >= maxPages {
				return
			}
			if IsSameDomain(e.Loc, domain) && !IsStaticAsset(e.Loc) {
				frontier.Add(NormalizeURL(e.Loc))
			}
		}
	}

	collect(sm.URLs)

	// A sitemap index points at child sitemaps instead of pages.
	for _, child := range sm.Sitemaps {
		if frontier.Visited() >= maxPages {
			break
		}
		childSm, err := fetchSitemap(ctx, child.Loc)
		if err != nil {
			continue
		}
		collect(childSm.URLs)
	}

	return frontier.All(), nil
}

// fetchSitemap retrieves and unmarshals one sitemap document.
func fetchSitemap(ctx context.Context, sitemapURL string) (*sitemapFile, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sitemap returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sm sitemapFile
	if err := xml.Unmarshal(body, &sm); err != nil {
		return nil, err
	}
	return &sm, nil
}

// discoverFromLinks performs BFS crawling to find internal links.
func discoverFromLinks(ctx context.Context, startURL string, domain string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	frontier := NewFrontier()
	frontier.Add(NormalizeURL(startURL))

	for frontier.HasNext() && frontier.Visited() < maxPages {
		currentURL := frontier.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			continue // Skip failed pages, don't block the crawl.
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if frontier.Visited() >= maxPages {
				break
			}
			if IsSameDomain(link, domain) && !IsStaticAsset(link) {
				frontier.Add(NormalizeURL(link))
			}
		}
	}

	return frontier.All(), nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(baseURL)
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(href, base)
		if resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
