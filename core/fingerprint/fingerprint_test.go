package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("# Title\n\nSome body text.")
	b := Generate("# Title\n\nSome body text.")

	assert.Equal(t, a.ContentHash, b.ContentHash)
	assert.Equal(t, a.SimilarityHash, b.SimilarityHash)
}

func TestGenerate_HashShapes(t *testing.T) {
	h := Generate("hello world")

	assert.Len(t, h.ContentHash, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", h.ContentHash)
	assert.Len(t, h.SimilarityHash, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", h.SimilarityHash)
}

func TestGenerate_ContentHashIgnoresFormatting(t *testing.T) {
	plain := Generate("Read the manual here.")
	linked := Generate("Read the [manual](https://example.com/man) here.")
	spaced := Generate("Read   the\nmanual    here.")

	assert.Equal(t, plain.ContentHash, linked.ContentHash)
	assert.Equal(t, plain.ContentHash, spaced.ContentHash)
}

func TestGenerate_ContentHashIsCaseSensitive(t *testing.T) {
	a := Generate("Hello World")
	b := Generate("hello world")

	assert.NotEqual(t, a.ContentHash, b.ContentHash)
}

func TestGenerate_SimilarityHashIgnoresOrderAndCase(t *testing.T) {
	a := Generate("alpha beta gamma")
	b := Generate("Gamma, alpha; BETA!")
	c := Generate("beta alpha gamma alpha")

	assert.Equal(t, a.SimilarityHash, b.SimilarityHash)
	assert.Equal(t, a.SimilarityHash, c.SimilarityHash)
}

func TestGenerate_SimilarityHashChangesWithWords(t *testing.T) {
	a := Generate("alpha beta gamma")
	b := Generate("alpha beta delta")

	assert.NotEqual(t, a.SimilarityHash, b.SimilarityHash)
}

func TestGenerate_EmptyInput(t *testing.T) {
	h := Generate("")

	assert.Len(t, h.ContentHash, 64)
	assert.Len(t, h.SimilarityHash, 16)
}
