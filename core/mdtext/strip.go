// Package mdtext reduces Markdown to plain text for scoring and hashing.
package mdtext

import (
	"regexp"
	"strings"
)

var (
	headingRegex   = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	imageRegex     = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRegex      = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	emphasisRegex  = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	inlineRegex    = regexp.MustCompile("`([^`\n]+)`")
	fenceLineRegex = regexp.MustCompile("(?m)^\\s*(```|~~~).*$")
	listRegex      = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	quoteRegex     = regexp.MustCompile(`(?m)^>\s?`)
	blankRunRegex  = regexp.MustCompile(`\n{3,}`)
)

// Strip removes Markdown syntax, keeping the visible text (including code
// content, minus fence lines). Blank-line paragraph separation is preserved.
func Strip(md string) string {
	text := md
	text = fenceLineRegex.ReplaceAllString(text, "")
	text = headingRegex.ReplaceAllString(text, "$1")
	text = imageRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = inlineRegex.ReplaceAllString(text, "$1")
	text = listRegex.ReplaceAllString(text, "")
	text = quoteRegex.ReplaceAllString(text, "")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// CollapseWhitespace reduces all whitespace runs to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
