// Package render — JSON renderer.
// Emits the complete assembled Record: chunks, metadata, code inventory,
// quality metrics, and fingerprints, with the field names downstream dataset
// consumers rely on.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/ragpipe/core"
)

// JSONRenderer produces the full Record as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the Record.
func (r *JSONRenderer) Render(rec *core.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
