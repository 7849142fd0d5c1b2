package chunk

import "strings"

// headingMark is one ATX heading occurrence in the document.
type headingMark struct {
	offset int // byte offset of the heading line start
	level  int // 1-6
	text   string
}

// Tracker maps character offsets to the heading breadcrumb active there.
// It scans the document once; lookups replay the heading stack up to the
// requested offset.
type Tracker struct {
	marks []headingMark
}

// NewTracker scans markdown for headings, ignoring heading-like lines
// inside fenced code blocks.
func NewTracker(markdown string) *Tracker {
	var marks []headingMark

	inFence := false
	offset := 0
	for _, line := range strings.SplitAfter(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case isFence(trimmed):
			inFence = !inFence
		case !inFence:
			if level, text, ok := parseHeading(trimmed); ok {
				marks = append(marks, headingMark{offset: offset, level: level, text: text})
			}
		}
		offset += len(line)
	}

	return &Tracker{marks: marks}
}

// ContextAt returns the " > "-joined breadcrumb active at offset, root to
// leaf. A heading starting exactly at offset is part of its own context.
// Content before the first heading has an empty breadcrumb.
func (t *Tracker) ContextAt(offset int) string {
	var stack []headingMark
	for _, m := range t.marks {
		if m.offset > offset {
			break
		}
		// A heading at level L closes every open heading at level >= L.
		for len(stack) > 0 && stack[len(stack)-1].level >= m.level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, m)
	}

	if len(stack) == 0 {
		return ""
	}
	parts := make([]string, len(stack))
	for i, m := range stack {
		parts[i] = m.text
	}
	return strings.Join(parts, " > ")
}

// lastHeadingIn returns the offset of the latest heading h with
// start < h <= end, or -1 if none exists.
func (t *Tracker) lastHeadingIn(start, end int) int {
	best := -1
	for _, m := range t.marks {
		if m.offset > end {
			break
		}
		if m.offset > start {
			best = m.offset
		}
	}
	return best
}

// isFence reports whether a trimmed line opens or closes a fenced code block.
func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// parseHeading parses an ATX heading line: 1-6 '#' runes followed by a space.
func parseHeading(trimmed string) (level int, text string, ok bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 || level == len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}
