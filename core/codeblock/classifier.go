// Package codeblock inventories fenced code blocks and inline code spans in
// Markdown. Matching is delimiter-balanced: a fence opened with ``` only
// closes on a ``` line, so backticks inside a ~~~ fence (and vice versa) are
// treated as content.
package codeblock

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/ragpipe/core"
)

// inlineCodeRegex matches single-backtick spans on a single line.
// A double-backtick span still counts once: the match starts at the first
// backtick pair enclosing non-backtick content.
var inlineCodeRegex = regexp.MustCompile("`[^`\n]+`")

// Classify scans markdown and returns its code inventory.
func Classify(markdown string) core.CodeBlocks {
	var blocks []core.FencedBlock
	inlineCount := 0

	inFence := false
	var fenceChar byte
	var fenceLang string
	var fenceLines []string

	flush := func() {
		code := strings.Join(fenceLines, "\n")
		blocks = append(blocks, core.FencedBlock{
			Language:  fenceLang,
			Code:      code,
			LineCount: countLines(code),
		})
		inFence = false
		fenceLines = nil
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inFence {
			if ch, lang, ok := openFence(trimmed); ok {
				inFence = true
				fenceChar = ch
				fenceLang = lang
				fenceLines = nil
				continue
			}
			inlineCount += len(inlineCodeRegex.FindAllString(line, -1))
			continue
		}

		if closesFence(trimmed, fenceChar) {
			flush()
			continue
		}
		fenceLines = append(fenceLines, line)
	}

	// An unterminated fence still yields its content as a block.
	if inFence {
		flush()
	}

	return core.CodeBlocks{
		FencedBlocks:    blocks,
		InlineCodeCount: inlineCount,
		HasCode:         len(blocks) > 0 || inlineCount > 0,
	}
}

// openFence reports whether a trimmed line opens a fence, returning the
// fence character and the declared language tag (empty if none).
func openFence(trimmed string) (byte, string, bool) {
	for _, ch := range []byte{'`', '~'} {
		marker := strings.Repeat(string(ch), 3)
		if strings.HasPrefix(trimmed, marker) {
			info := strings.TrimLeft(trimmed, string(ch))
			lang := ""
			if fields := strings.Fields(info); len(fields) > 0 {
				lang = fields[0]
			}
			return ch, lang, true
		}
	}
	return 0, "", false
}

// closesFence reports whether a trimmed line closes a fence opened with ch:
// a run of at least three fence characters and nothing else.
func closesFence(trimmed string, ch byte) bool {
	if len(trimmed) < 3 {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

// countLines is newline count + 1 for non-empty code, 0 for empty.
func countLines(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}
