// Package cmd — scrape command.
// Orchestrates the pipeline: fetch → extract → normalize → enrich → write.
//
// Single-URL mode processes one page; --all discovers and processes the
// whole site through a bounded worker pool. Enrichment failures on one page
// never halt the batch.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gaurav-prasanna/ragpipe/config"
	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/gaurav-prasanna/ragpipe/core/assemble"
	"github.com/gaurav-prasanna/ragpipe/core/extract"
	"github.com/gaurav-prasanna/ragpipe/core/fetch"
	"github.com/gaurav-prasanna/ragpipe/core/meta"
	"github.com/gaurav-prasanna/ragpipe/core/normalize"
	"github.com/gaurav-prasanna/ragpipe/core/output"
	"github.com/gaurav-prasanna/ragpipe/core/render"
	"github.com/gaurav-prasanna/ragpipe/crawl"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "ragpipe.yaml"

// Flag variables.
var (
	flagAll          bool
	flagJSON         bool
	flagMarkdown     bool
	flagPDF          bool
	flagDataset      bool
	flagChunkSize    int
	flagChunkOverlap int
	flagIncludeLinks bool
	flagConcurrency  int
	flagMaxPages     int
	flagOutputDir    string
	flagConfigFile   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a URL into a RAG-ready record",
	Long: `Scrape fetches a webpage, extracts the main article content, normalizes it
to Markdown, and enriches it into a record with chunks, metadata, quality
metrics, code inventory, and deduplication fingerprints.

Examples:
  ragpipe scrape https://example.com --json
  ragpipe scrape https://example.com/docs --all --dataset
  ragpipe scrape https://example.com --markdown --output-dir ./out
  ragpipe scrape https://example.com --chunk-size 800 --chunk-overlap 80`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().BoolVar(&flagAll, "all", false, "Process all discovered same-domain pages")

	// Output format flags (mutually exclusive; --json is the default).
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Write full records as JSON (default)")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Write normalized Markdown")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Write styled PDF")
	scrapeCmd.Flags().BoolVar(&flagDataset, "dataset", false, "Append records to a JSONL dataset instead of per-page files")

	scrapeCmd.Flags().IntVar(&flagChunkSize, "chunk-size", 0, "Target chunk size in characters")
	scrapeCmd.Flags().IntVar(&flagChunkOverlap, "chunk-overlap", 0, "Overlap between adjacent chunks in characters")
	scrapeCmd.Flags().BoolVar(&flagIncludeLinks, "include-links", true, "Keep link syntax in the normalized Markdown")
	scrapeCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Worker pool size for --all mode")
	scrapeCmd.Flags().IntVar(&flagMaxPages, "max-pages", 0, "Discovery limit for --all mode")
	scrapeCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Output directory (default: current directory)")
	scrapeCmd.Flags().StringVar(&flagConfigFile, "config", "", "Path to a ragpipe.yaml config file")
}

// pipeline bundles the stages a scrape run needs.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	assembler  *assemble.Assembler
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	assembler, err := assemble.New(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return err
	}

	p := &pipeline{
		fetcher:    fetch.New(),
		extractor:  extract.New(),
		normalizer: normalize.New(cfg.IncludeLinks),
		assembler:  assembler,
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	if flagAll {
		return runAll(ctx, rawURL, cfg, p, renderer, writer)
	}
	return runOne(ctx, rawURL, p, renderer, writer)
}

// loadConfig layers the optional yaml file under flag overrides and
// validates once, before any document is processed.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path := flagConfigFile
	if path == "" {
		path = defaultConfigFile
	}
	loaded, err := config.LoadFromFile(path)
	switch {
	case err == nil:
		slog.Debug("loaded config file", slog.String("path", path))
		cfg = loaded
	case os.IsNotExist(err) && flagConfigFile == "":
		// No config file is fine; defaults apply.
	default:
		return cfg, err
	}

	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = flagChunkSize
	}
	if cmd.Flags().Changed("chunk-overlap") {
		cfg.ChunkOverlap = flagChunkOverlap
	}
	if cmd.Flags().Changed("include-links") {
		cfg.IncludeLinks = flagIncludeLinks
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = flagMaxPages
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runOne processes a single URL through the pipeline.
func runOne(ctx context.Context, rawURL string, p *pipeline, renderer core.Renderer, writer *output.Writer) error {
	rec, err := processURL(ctx, p, rawURL)
	if err != nil {
		return err
	}

	if flagDataset {
		ds, err := output.NewDatasetWriter(filepath.Join(writer.OutputDir, "dataset.jsonl"))
		if err != nil {
			return err
		}
		defer ds.Close()
		if err := ds.Append(rec); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", ds.Path)
		return nil
	}

	data, err := renderer.Render(rec)
	if err != nil {
		return err
	}
	path, err := writer.WritePage(rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// runAll discovers internal pages and processes them through a bounded
// worker pool. One page's failure is logged and counted; the rest continue.
func runAll(ctx context.Context, rawURL string, cfg config.Config, p *pipeline, renderer core.Renderer, writer *output.Writer) error {
	slog.Info("discovering pages", slog.String("url", rawURL))

	urls, err := crawl.DiscoverAll(ctx, rawURL, p.fetcher, cfg.MaxPages)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	slog.Info("discovery complete", slog.Int("pages", len(urls)))

	var dataset *output.DatasetWriter
	if flagDataset {
		dataset, err = output.NewDatasetWriter(filepath.Join(writer.OutputDir, "dataset.jsonl"))
		if err != nil {
			return err
		}
		defer dataset.Close()
	}

	var failed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for _, pageURL := range urls {
		g.Go(func() error {
			rec, err := processURL(ctx, p, pageURL)
			if err != nil {
				var inputErr *core.InputError
				if errors.As(err, &inputErr) {
					slog.Warn("skipping page", slog.String("url", pageURL), slog.String("missing", inputErr.Field))
				} else {
					slog.Error("processing failed", slog.String("url", pageURL), slog.String("error", err.Error()))
				}
				failed.Add(1)
				return nil
			}

			if dataset != nil {
				if err := dataset.Append(rec); err != nil {
					slog.Error("dataset append failed", slog.String("url", pageURL), slog.String("error", err.Error()))
					failed.Add(1)
				}
				return nil
			}

			data, err := renderer.Render(rec)
			if err != nil {
				slog.Error("render failed", slog.String("url", pageURL), slog.String("error", err.Error()))
				failed.Add(1)
				return nil
			}
			path, err := writer.WriteTree(pageURL, data, renderer.Extension())
			if err != nil {
				slog.Error("write failed", slog.String("url", pageURL), slog.String("error", err.Error()))
				failed.Add(1)
				return nil
			}
			slog.Debug("written", slog.String("path", path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		slog.Warn("batch finished with failures", slog.Int64("failed", n), slog.Int("total", len(urls)))
	} else {
		slog.Info("batch finished", slog.Int("total", len(urls)))
	}
	return nil
}

// processURL runs a single URL through the full pipeline.
func processURL(ctx context.Context, p *pipeline, rawURL string) (*core.Record, error) {
	result, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	sourceMeta := meta.ParseHTMLMeta(result.HTML)

	extracted, err := p.extractor.Extract(result.HTML, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	markdown, err := p.normalizer.Normalize(extracted.ContentHTML, rawURL)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	title := extracted.Title
	if title == "" {
		title = sourceMeta["title"]
	}

	doc := core.Document{
		URL:                rawURL,
		Title:              title,
		NormalizedMarkdown: markdown,
		SourceMeta:         sourceMeta,
		RawHTMLLength:      len(result.HTML),
	}

	rec, err := p.assembler.Assemble(doc)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return rec, nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// Formats are mutually exclusive; JSON is the default.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, set := range []bool{flagJSON, flagMarkdown, flagPDF} {
		if set {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewJSONRenderer(), nil
	}
}
