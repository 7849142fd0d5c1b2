package mdtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip_Headings(t *testing.T) {
	assert.Equal(t, "Title", Strip("# Title"))
	assert.Equal(t, "Sub", Strip("### Sub\n"))
}

func TestStrip_LinksAndImages(t *testing.T) {
	assert.Equal(t, "see docs here", Strip("see [docs](https://example.com/docs) here"))
	assert.Equal(t, "diagram", Strip("![diagram](img.png)"))
	assert.Equal(t, "", Strip("![](decoration.png)"))
}

func TestStrip_EmphasisAndInlineCode(t *testing.T) {
	assert.Equal(t, "bold and italic", Strip("**bold** and *italic*"))
	assert.Equal(t, "run go build now", Strip("run `go build` now"))
}

func TestStrip_FenceLinesRemovedContentKept(t *testing.T) {
	md := "before\n\n```go\nfunc main() {}\n```\n\nafter"
	assert.Equal(t, "before\n\nfunc main() {}\n\nafter", Strip(md))
}

func TestStrip_ListsAndQuotes(t *testing.T) {
	assert.Equal(t, "one\ntwo", Strip("- one\n- two"))
	assert.Equal(t, "first\nsecond", Strip("1. first\n2. second"))
	assert.Equal(t, "quoted line", Strip("> quoted line"))
}

func TestStrip_BlankRunsCollapsed(t *testing.T) {
	assert.Equal(t, "a\n\nb", Strip("a\n\n\n\n\nb"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a\n\tb   c\n"))
	assert.Equal(t, "", CollapseWhitespace(" \n\t "))
}
