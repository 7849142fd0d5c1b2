// Package assemble merges the enrichment stage outputs into the final Record.
//
// Assembly fails only when the Document itself is missing a required field
// (url, normalized markdown). Every enrichment stage is a pure function that
// degrades to empty or default values, so a page with no metadata, no code,
// and no headings still yields a complete record.
package assemble

import (
	"strings"
	"time"

	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/gaurav-prasanna/ragpipe/core/chunk"
	"github.com/gaurav-prasanna/ragpipe/core/codeblock"
	"github.com/gaurav-prasanna/ragpipe/core/fingerprint"
	"github.com/gaurav-prasanna/ragpipe/core/meta"
	"github.com/gaurav-prasanna/ragpipe/core/quality"
	"github.com/google/uuid"
)

// Assembler runs the enrichment stages over documents. A single Assembler is
// safe for concurrent use: each call allocates its own state.
type Assembler struct {
	chunker *chunk.Chunker
	now     func() time.Time
}

// New creates an Assembler with the given chunk parameters.
func New(chunkSize, chunkOverlap int) (*Assembler, error) {
	c, err := chunk.New(chunkSize, chunkOverlap)
	if err != nil {
		return nil, err
	}
	return &Assembler{chunker: c, now: time.Now}, nil
}

// Assemble enriches a Document into a Record. Returns *core.InputError when
// a required field is missing.
func (a *Assembler) Assemble(doc core.Document) (*core.Record, error) {
	if strings.TrimSpace(doc.URL) == "" {
		return nil, &core.InputError{Field: "url"}
	}
	if strings.TrimSpace(doc.NormalizedMarkdown) == "" {
		return nil, &core.InputError{Field: "normalized_markdown"}
	}

	chunks := a.chunker.Split(doc.NormalizedMarkdown)
	codeBlocks := codeblock.Classify(doc.NormalizedMarkdown)
	metadata := meta.Extract(doc, len(codeBlocks.FencedBlocks), a.now())
	metrics := quality.Score(doc)
	hashes := fingerprint.Generate(doc.NormalizedMarkdown)

	totalChars := 0
	totalTokens := 0
	for _, c := range chunks {
		totalChars += c.CharCount
		totalTokens += c.EstimatedTokenCount
	}

	return &core.Record{
		RecordID:        uuid.NewString(),
		URL:             doc.URL,
		Title:           doc.Title,
		MarkdownContent: doc.NormalizedMarkdown,
		Chunks:          chunks,
		Metadata:        metadata,
		CodeBlocks:      codeBlocks,
		Quality:         metrics,
		Hashes:          hashes,
		TotalChunks:     len(chunks),
		TotalChars:      totalChars,
		EstimatedTokens: totalTokens,
	}, nil
}
