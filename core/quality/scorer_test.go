package quality

import (
	"testing"

	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/stretchr/testify/assert"
)

func mdDoc(markdown string) core.Document {
	return core.Document{URL: "https://example.com", NormalizedMarkdown: markdown}
}

func TestScore_Counts(t *testing.T) {
	m := Score(mdDoc("Hello world. Foo bar!"))

	assert.Equal(t, 4, m.WordCount)
	assert.Equal(t, 2, m.SentenceCount)
	assert.Equal(t, 1, m.ParagraphCount)
	assert.InDelta(t, 2.0, m.AvgSentenceLength, 0.001)
	assert.Equal(t, 1, m.ReadingTimeMinutes)
}

func TestScore_AbbreviationGuard(t *testing.T) {
	// The period inside "e.g." is followed by a lower-case letter and is
	// not a sentence end.
	m := Score(mdDoc("The term e.g. means for example. Second sentence here."))

	assert.Equal(t, 3, m.SentenceCount)
}

func TestScore_Paragraphs(t *testing.T) {
	m := Score(mdDoc("First paragraph.\n\nSecond paragraph.\n\nThird."))

	assert.Equal(t, 3, m.ParagraphCount)
}

func TestScore_StructureScoreFull(t *testing.T) {
	md := "# Heading\n\n- item one\n- item two\n\nSee [link](https://example.com).\n"
	m := Score(mdDoc(md))

	assert.True(t, m.HasHeadings)
	assert.True(t, m.HasLists)
	assert.True(t, m.HasLinks)
	assert.InDelta(t, 1.0, m.StructureScore, 0.001)
}

func TestScore_StructureScorePartial(t *testing.T) {
	m := Score(mdDoc("# Only a heading\n\nplain prose"))

	assert.True(t, m.HasHeadings)
	assert.False(t, m.HasLists)
	assert.False(t, m.HasLinks)
	assert.InDelta(t, 1.0/3.0, m.StructureScore, 0.001)
}

func TestScore_StructureScoreZero(t *testing.T) {
	m := Score(mdDoc("plain prose only"))

	assert.InDelta(t, 0.0, m.StructureScore, 0.001)
}

func TestScore_DensityClampedToOne(t *testing.T) {
	doc := mdDoc("a much longer plain text body than the html length suggests")
	doc.RawHTMLLength = 5

	m := Score(doc)

	assert.LessOrEqual(t, m.TextDensity, 1.0)
	assert.GreaterOrEqual(t, m.TextDensity, 0.0)
}

func TestScore_DensityUsesHTMLLength(t *testing.T) {
	doc := mdDoc("ten chars.")
	doc.RawHTMLLength = 100

	m := Score(doc)

	assert.InDelta(t, 0.1, m.TextDensity, 0.001)
}

func TestScore_EmptyDocument(t *testing.T) {
	m := Score(mdDoc(""))

	assert.Equal(t, 0, m.WordCount)
	assert.Equal(t, 0, m.ParagraphCount)
	assert.Equal(t, 0, m.ReadingTimeMinutes)
	assert.Equal(t, 0.0, m.AvgSentenceLength)
}

func TestScore_ReadingTimeRoundsUp(t *testing.T) {
	var words string
	for i := 0; i < 201; i++ {
		words += "word "
	}
	m := Score(mdDoc(words))

	assert.Equal(t, 201, m.WordCount)
	assert.Equal(t, 2, m.ReadingTimeMinutes)
}
