package meta

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTMLMeta harvests meta tags, the html lang attribute, the page title,
// and JSON-LD structured data from raw HTML into a flat key-value map.
// Meta tag names are lower-cased; JSON-LD values live under "jsonld:" keys.
// Parse failures yield an empty map, never an error: missing metadata is a
// degradation, not a failure.
func ParseHTMLMeta(html string) map[string]string {
	result := make(map[string]string)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	if lang, ok := doc.Find("html").Attr("lang"); ok && lang != "" {
		result["lang"] = lang
	}
	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		result["title"] = title
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := s.AttrOr("name", s.AttrOr("property", ""))
		content := s.AttrOr("content", "")
		if name == "" || content == "" {
			return
		}
		key := strings.ToLower(name)
		if _, exists := result[key]; !exists {
			result[key] = content
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		harvestJSONLD(s.Text(), result)
	})

	return result
}

// harvestJSONLD pulls the fields the metadata extractor consumes out of a
// JSON-LD payload. Both single objects and arrays are accepted.
func harvestJSONLD(raw string, out map[string]string) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return
	}

	objects, ok := parsed.([]any)
	if !ok {
		objects = []any{parsed}
	}

	for _, item := range objects {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		setIfEmpty(out, "jsonld:type", jsonLDString(obj["@type"]))
		setIfEmpty(out, "jsonld:author", jsonLDName(obj["author"]))
		setIfEmpty(out, "jsonld:datepublished", jsonLDString(obj["datePublished"]))
		setIfEmpty(out, "jsonld:datemodified", jsonLDString(obj["dateModified"]))
	}
}

// jsonLDString extracts a string value, taking the first entry of an array.
func jsonLDString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			return jsonLDString(t[0])
		}
	}
	return ""
}

// jsonLDName extracts an author name from a string, a Person object, or an
// array of either.
func jsonLDName(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		return jsonLDString(t["name"])
	case []any:
		if len(t) > 0 {
			return jsonLDName(t[0])
		}
	}
	return ""
}

func setIfEmpty(m map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = value
	}
}
