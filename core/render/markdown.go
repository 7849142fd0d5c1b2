// Package render provides output renderers for the ragpipe pipeline.
// This file implements the Markdown renderer, which emits the record's
// normalized markdown as-is.
package render

import (
	"github.com/gaurav-prasanna/ragpipe/core"
)

// MarkdownRenderer writes the normalized Markdown. It's the simplest
// renderer since Markdown is already the canonical pipeline format.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the record's Markdown as bytes.
func (r *MarkdownRenderer) Render(rec *core.Record) ([]byte, error) {
	return []byte(rec.MarkdownContent), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
