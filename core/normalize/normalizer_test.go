package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_HeadingsAndParagraphs(t *testing.T) {
	html := "<h1>Title</h1><p>First paragraph.</p><p>Second paragraph.</p>"

	md, err := New(true).Normalize(html, "https://example.com/page")
	require.NoError(t, err)

	assert.Contains(t, md, "# Title")
	assert.Contains(t, md, "First paragraph.")
	assert.Contains(t, md, "Second paragraph.")
}

func TestNormalize_RelativeLinksResolved(t *testing.T) {
	html := `<p>See the <a href="/docs/setup">setup docs</a>.</p>`

	md, err := New(true).Normalize(html, "https://example.com/page")
	require.NoError(t, err)

	assert.Contains(t, md, "[setup docs](https://example.com/docs/setup)")
}

func TestNormalize_LinksStripped(t *testing.T) {
	html := `<p>See the <a href="/docs/setup">setup docs</a>.</p>`

	md, err := New(false).Normalize(html, "https://example.com/page")
	require.NoError(t, err)

	assert.Contains(t, md, "setup docs")
	assert.NotContains(t, md, "](")
	assert.NotContains(t, md, "https://example.com/docs/setup")
}

func TestNormalize_ImagesReducedToAltText(t *testing.T) {
	html := `<p>Before <img src="/pic.png" alt="a diagram"> after.</p>`

	md, err := New(false).Normalize(html, "https://example.com/page")
	require.NoError(t, err)

	assert.Contains(t, md, "a diagram")
	assert.NotContains(t, md, "![")
	assert.NotContains(t, md, "pic.png")
}

func TestNormalize_TrimmedAndCollapsed(t *testing.T) {
	html := "<div><p>one</p><br><br><br><p>two</p></div>"

	md, err := New(true).Normalize(html, "")
	require.NoError(t, err)

	assert.NotContains(t, md, "\n\n\n")
	assert.Equal(t, md, strings.TrimSpace(md))
}

func TestStripLinks_AutoLink(t *testing.T) {
	assert.Equal(t, "see https://example.com now", stripLinks("see <https://example.com> now"))
}
