// Package chunk splits normalized Markdown into bounded, heading-aware,
// overlapping chunks for RAG ingestion.
//
// Split points are chosen at the latest semantic boundary of the highest
// available priority inside the size window: heading > blank line > sentence
// end > hard character cut. The cursor and heading stack are tracked flat and
// index-based; there is no recursion.
package chunk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/ragpipe/core"
)

const (
	// DefaultSize is the target chunk size in characters.
	DefaultSize = 1000
	// DefaultOverlap is the default overlap between adjacent chunks.
	DefaultOverlap = 100
	// charsPerToken is the approximate average characters per token for GPT
	// tokenizers.
	charsPerToken = 4
)

// cut kinds, in boundary priority order.
const (
	cutHeading = iota
	cutParagraph
	cutSentence
	cutHard
)

// Chunker splits markdown into chunks.
type Chunker struct {
	size    int
	overlap int
}

// New creates a Chunker. Both values are caller-configurable and must
// satisfy 0 <= overlap < size.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap (%d) must be in [0, size), size %d", overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// NewDefault creates a Chunker with the default size and overlap.
func NewDefault() *Chunker {
	c, err := New(DefaultSize, DefaultOverlap)
	if err != nil {
		panic(err)
	}
	return c
}

// Split chunks the markdown in document order. A document shorter than the
// target size yields exactly one chunk. Concatenating chunk contents with
// overlaps removed reconstructs the input.
func (c *Chunker) Split(markdown string) []core.Chunk {
	if markdown == "" {
		return nil
	}

	tracker := NewTracker(markdown)

	var chunks []core.Chunk
	cursor := 0
	for cursor < len(markdown) {
		end, kind := c.cut(markdown, tracker, cursor)

		content := markdown[cursor:end]
		chunks = append(chunks, core.Chunk{
			ChunkID:             len(chunks) + 1,
			Content:             content,
			HeadingContext:      tracker.ContextAt(cursor),
			CharCount:           len(content),
			EstimatedTokenCount: estimateTokens(len(content)),
		})

		if end >= len(markdown) {
			break
		}
		cursor = c.nextStart(markdown, cursor, end, kind)
	}

	return chunks
}

// cut returns the end offset of the chunk starting at cursor and the kind of
// boundary chosen. The window is (cursor, cursor+size]; when the remainder
// fits, the chunk runs to the end of the document.
func (c *Chunker) cut(markdown string, tracker *Tracker, cursor int) (int, int) {
	limit := cursor + c.size
	if limit >= len(markdown) {
		return len(markdown), cutHard
	}

	// Heading boundary: cut right before the latest heading in the window.
	if h := tracker.lastHeadingIn(cursor, limit); h != -1 {
		return h, cutHeading
	}

	window := markdown[cursor:limit]

	// Boundaries inside the overlap region are rejected: a cut there would
	// not advance past the previous chunk's end.
	minCut := c.overlap + 1

	// Paragraph boundary: cut after the latest blank line.
	if i := strings.LastIndex(window, "\n\n"); i > 0 && i+2 >= minCut {
		return cursor + i + 2, cutParagraph
	}

	// Sentence boundary: cut after the latest terminal punctuation that is
	// followed by whitespace.
	for i := len(window) - 2; i > 0 && i+2 >= minCut; i-- {
		ch := window[i]
		if (ch == '.' || ch == '!' || ch == '?') && isSpaceByte(window[i+1]) {
			return cursor + i + 2, cutSentence
		}
	}

	// Hard cut at exactly size, backed off to a rune boundary.
	end := limit
	for end > cursor+1 && !utf8.RuneStart(markdown[end]) {
		end--
	}
	return end, cutHard
}

// nextStart computes where the next chunk begins after a cut at end.
// Heading cuts take no overlap: carrying prior-section text across a heading
// would put it under the wrong breadcrumb. Other cuts back up by the
// configured overlap; a start that would land mid-word slides forward to the
// next word boundary, keeping the shared region within the configured bound.
func (c *Chunker) nextStart(markdown string, cursor, end, kind int) int {
	if kind == cutHeading || c.overlap == 0 {
		return end
	}

	start := end - c.overlap
	if start <= cursor {
		start = cursor + 1
	}
	for start < end && !utf8.RuneStart(markdown[start]) {
		start++
	}
	for start < end && !wordBoundary(markdown, start) {
		start++
	}
	return start
}

// wordBoundary reports whether position i does not split a word.
func wordBoundary(s string, i int) bool {
	return isSpaceByte(s[i-1]) || isSpaceByte(s[i])
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// estimateTokens applies the fixed chars-per-token approximation, rounded up.
func estimateTokens(chars int) int {
	if chars == 0 {
		return 0
	}
	return (chars + charsPerToken - 1) / charsPerToken
}
