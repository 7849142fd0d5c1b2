// Package core defines the pipeline types and interfaces for ragpipe.
// Each stage of the pipeline is a clean, testable interface; the enrichment
// stages are pure functions over a Document.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// ExtractResult holds the article content isolated from a full page.
type ExtractResult struct {
	Title       string
	ContentHTML string
}

// Document is the input to the enrichment pipeline. It is produced by the
// fetch/extract/normalize stages and never mutated afterwards.
type Document struct {
	URL                string
	Title              string
	NormalizedMarkdown string
	// SourceMeta maps lower-cased meta tag names (and JSON-LD values under
	// "jsonld:" keys, plus the html lang attribute under "lang") to content.
	SourceMeta    map[string]string
	RawHTMLLength int
}

// Chunk is one bounded, heading-aware slice of the normalized markdown.
// ChunkIDs are 1-based, sequential and gap-free within a document.
type Chunk struct {
	ChunkID             int    `json:"chunk_id"`
	Content             string `json:"content"`
	HeadingContext      string `json:"heading_context"`
	CharCount           int    `json:"char_count"`
	EstimatedTokenCount int    `json:"estimated_token_count"`
}

// Content type labels assigned by the metadata extractor.
const (
	ContentTypeDocumentation = "documentation"
	ContentTypeWiki          = "wiki"
	ContentTypeProduct       = "product"
	ContentTypeBlog          = "blog"
	ContentTypeGeneral       = "general"
)

// Metadata holds page-level metadata derived from meta tags and the URL.
// Optional fields are empty when the source provides no signal.
type Metadata struct {
	URL          string   `json:"url"`
	Domain       string   `json:"domain"`
	ScrapedAt    string   `json:"scraped_at"` // ISO-8601 UTC
	Author       string   `json:"author,omitempty"`
	PublishDate  string   `json:"publish_date,omitempty"`
	LastModified string   `json:"last_modified,omitempty"`
	Language     string   `json:"language,omitempty"`
	Keywords     []string `json:"keywords"`
	Description  string   `json:"description,omitempty"`
	ContentType  string   `json:"content_type"`
}

// FencedBlock is one fenced code region found in the markdown.
type FencedBlock struct {
	Language  string `json:"language,omitempty"`
	Code      string `json:"code"`
	LineCount int    `json:"line_count"`
}

// CodeBlocks is the code inventory of a document.
type CodeBlocks struct {
	FencedBlocks    []FencedBlock `json:"fenced_blocks"`
	InlineCodeCount int           `json:"inline_code_count"`
	HasCode         bool          `json:"has_code"`
}

// QualityMetrics holds density, counts, and the composite structure score.
type QualityMetrics struct {
	TextDensity        float64 `json:"text_density"`
	WordCount          int     `json:"word_count"`
	ParagraphCount     int     `json:"paragraph_count"`
	SentenceCount      int     `json:"sentence_count"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	ReadingTimeMinutes int     `json:"reading_time_minutes"`
	HasLists           bool    `json:"has_lists"`
	HasHeadings        bool    `json:"has_headings"`
	HasLinks           bool    `json:"has_links"`
	StructureScore     float64 `json:"structure_score"`
}

// Hashes holds the deduplication fingerprints of a document.
type Hashes struct {
	ContentHash    string `json:"content_hash"`
	SimilarityHash string `json:"similarity_hash"`
}

// Record is the assembled, RAG-ready output for a single URL.
// It is created once per input URL and never mutated after assembly.
type Record struct {
	RecordID        string         `json:"record_id"`
	URL             string         `json:"url"`
	Title           string         `json:"title"`
	MarkdownContent string         `json:"markdown_content"`
	Chunks          []Chunk        `json:"chunks"`
	Metadata        Metadata       `json:"metadata"`
	CodeBlocks      CodeBlocks     `json:"code_blocks"`
	Quality         QualityMetrics `json:"quality_metrics"`
	Hashes          Hashes         `json:"hashes"`
	TotalChunks     int            `json:"total_chunks"`
	TotalChars      int            `json:"total_chars"`
	EstimatedTokens int            `json:"estimated_tokens"`
}

// InputError reports a Document missing a required field. Assembly of that
// document is aborted; the batch continues.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return "document missing required field: " + e.Field
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main article content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string, pageURL string) (*ExtractResult, error)
}

// Normalizer converts extracted HTML into Markdown (the canonical format),
// resolving relative links against the page URL.
type Normalizer interface {
	Normalize(html string, pageURL string) (string, error)
}

// Renderer converts an assembled Record into a final output format.
type Renderer interface {
	Render(rec *Record) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".json").
	Extension() string
}
