// Package quality scores the structure and density of extracted content.
// All metrics are cheap text heuristics; nothing here understands language.
package quality

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/gaurav-prasanna/ragpipe/core/mdtext"
)

// wordsPerMinute is the fixed reading speed assumption.
const wordsPerMinute = 200

var (
	listItemRegex = regexp.MustCompile(`(?m)^\s*(?:[-*+]\s|\d+\.\s)`)
	headingRegex  = regexp.MustCompile(`(?m)^#{1,6}\s`)
	linkRegex     = regexp.MustCompile(`\[[^\]]*\]\([^)]+\)`)
)

// Score computes the quality metrics for a document.
func Score(doc core.Document) core.QualityMetrics {
	markdown := doc.NormalizedMarkdown
	plain := mdtext.Strip(markdown)

	wordCount := len(strings.Fields(plain))
	sentenceCount := countSentences(plain)
	paragraphCount := countParagraphs(plain)

	avgSentence := 0.0
	if wordCount > 0 {
		avgSentence = float64(wordCount) / float64(max(sentenceCount, 1))
	}

	hasLists := listItemRegex.MatchString(markdown)
	hasHeadings := headingRegex.MatchString(markdown)
	hasLinks := linkRegex.MatchString(markdown)

	return core.QualityMetrics{
		TextDensity:        textDensity(len(plain), doc.RawHTMLLength, len(markdown)),
		WordCount:          wordCount,
		ParagraphCount:     paragraphCount,
		SentenceCount:      sentenceCount,
		AvgSentenceLength:  avgSentence,
		ReadingTimeMinutes: readingTime(wordCount),
		HasLists:           hasLists,
		HasHeadings:        hasHeadings,
		HasLinks:           hasLinks,
		StructureScore:     (boolScore(hasLists) + boolScore(hasHeadings) + boolScore(hasLinks)) / 3.0,
	}
}

// countSentences counts terminal punctuation marks not immediately followed
// by a lower-case letter (a cheap abbreviation guard).
func countSentences(text string) int {
	runes := []rune(text)
	count := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) {
			next := runes[i+1]
			if next >= 'a' && next <= 'z' {
				continue
			}
		}
		count++
	}
	return count
}

// countParagraphs counts blank-line-separated blocks with non-empty text.
func countParagraphs(text string) int {
	count := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

// textDensity is plain-text length over source length, clamped to [0,1].
// Fetched pages use the raw HTML length; markdown-only input falls back to
// the markdown length.
func textDensity(plainLen, rawHTMLLen, markdownLen int) float64 {
	denom := rawHTMLLen
	if denom <= 0 {
		denom = markdownLen
	}
	if denom <= 0 {
		denom = 1
	}
	density := float64(plainLen) / float64(denom)
	if density > 1 {
		return 1
	}
	if density < 0 {
		return 0
	}
	return density
}

// readingTime is word count over the fixed wpm assumption, rounded up.
func readingTime(wordCount int) int {
	if wordCount == 0 {
		return 0
	}
	return (wordCount + wordsPerMinute - 1) / wordsPerMinute
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
