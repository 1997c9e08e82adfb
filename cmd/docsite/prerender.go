package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/assets"
	"github.com/alnah/go-docsite/internal/config"
	"github.com/alnah/go-docsite/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCollections = errors.New("no collections specified")
	ErrWriteOutput   = errors.New("failed to write output file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

const (
	defaultOutputDir = "public"
	defaultStyle     = "default"
	pageTemplateName = "page"
)

// pageToRender maps one content file to its prerendered output path.
type pageToRender struct {
	Collection *docsite.Collection
	URLPath    string
	OutputPath string
}

// renderResult holds the outcome of rendering a single page.
type renderResult struct {
	URLPath    string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates a full prerender: load config, load collections,
// discover pages, render them concurrently, and write the results.
func run(ctx context.Context, flags *prerenderFlags, args []string, logger *zap.Logger, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, args, cfg)

	if len(cfg.Content.Collections) == 0 {
		return ErrNoCollections
	}

	contentDir := cfg.Content.Dir
	if contentDir == "" {
		contentDir = "."
	}
	outputDir := cfg.Output.Dir
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	// Resolve the footer date once for the whole run.
	footer := cfg.Site.Footer
	if cfg.Site.Date != "" {
		date, err := dateutil.ResolveDate(cfg.Site.Date, time.Now())
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		if footer != "" {
			footer += " · " + date
		} else {
			footer = date
		}
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return err
	}

	styleName := cfg.Site.Style
	if styleName == "" {
		styleName = defaultStyle
	}
	style, err := resolver.LoadStyle(styleName)
	if err != nil {
		return err
	}

	tmplText, err := resolver.LoadTemplate(pageTemplateName)
	if err != nil {
		return err
	}
	tmpl, err := template.New(pageTemplateName).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("parsing page template: %w", err)
	}

	lib, err := docsite.LoadAll(contentDir, cfg.Content.Collections, docsite.WithLogger(logger))
	if err != nil {
		return err
	}

	var pages []pageToRender
	for _, name := range lib.Names() {
		c, err := lib.Collection(name)
		if err != nil {
			return err
		}
		found, err := discoverPages(c, name, contentDir, outputDir)
		if err != nil {
			return fmt.Errorf("discovering pages in %q: %w", name, err)
		}
		pages = append(pages, found...)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no markdown pages found under %s", contentDir)
	}

	site := &siteRenderer{
		tmpl:      tmpl,
		style:     template.CSS(style),
		siteTitle: cfg.Site.Title,
		footer:    footer,
	}

	workers := resolvePoolSize(cfg.Render.Workers)
	logger.Info("prerendering site",
		zap.Int("pages", len(pages)),
		zap.Int("workers", workers),
		zap.String("output", outputDir))

	results := renderBatch(ctx, site, pages, workers)

	failed := printResults(results, flags.quiet, flags.verbose, stdout, stderr)
	if failed > 0 {
		return fmt.Errorf("%d page(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *prerenderFlags, args []string, cfg *config.Config) {
	if flags.contentDir != "" {
		cfg.Content.Dir = flags.contentDir
	} else if len(args) > 0 {
		cfg.Content.Dir = args[0]
	}
	if len(flags.collections) > 0 {
		cfg.Content.Collections = flags.collections
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers > 0 {
		cfg.Render.Workers = flags.workers
	}
	if flags.style != "" {
		cfg.Site.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.siteTitle != "" {
		cfg.Site.Title = flags.siteTitle
	}
	if flags.footer != "" {
		cfg.Site.Footer = flags.footer
	}
	if flags.date != "" {
		cfg.Site.Date = flags.date
	}
}

// discoverPages walks a collection's content directory and maps every
// markdown page to its URL path and output file. The navigation
// document and the asset directory are not pages. README files become
// index.html so directory URLs resolve when served statically.
func discoverPages(c *docsite.Collection, name, contentDir, outputDir string) ([]pageToRender, error) {
	collectionDir := filepath.Join(contentDir, strings.ToLower(name))
	outBase := filepath.Join(outputDir, strings.ToLower(name))

	var pages []pageToRender
	err := filepath.WalkDir(collectionDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".gitbook" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != docsite.ContentExt || d.Name() == docsite.SummaryFile {
			return nil
		}

		rel, err := filepath.Rel(collectionDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(strings.TrimSuffix(rel, docsite.ContentExt))

		urlPath := rel
		outPath := filepath.Join(outBase, filepath.FromSlash(rel)+".html")
		if rel == docsite.ReadmeBase || strings.HasSuffix(rel, "/"+docsite.ReadmeBase) {
			dir := strings.TrimSuffix(rel, docsite.ReadmeBase)
			urlPath = dir
			outPath = filepath.Join(outBase, filepath.FromSlash(dir), "index.html")
		}

		pages = append(pages, pageToRender{
			Collection: c,
			URLPath:    urlPath,
			OutputPath: outPath,
		})
		return nil
	})
	return pages, err
}

// siteRenderer renders pages through the shared layout template.
type siteRenderer struct {
	tmpl      *template.Template
	style     template.CSS
	siteTitle string
	footer    string
}

// pageView is the data handed to the page template.
type pageView struct {
	Title       string
	SiteTitle   string
	Description string
	Image       string
	Style       template.CSS
	Content     template.HTML
	Nav         []docsite.NavLink
	TOC         []docsite.TocLink
	Footer      string
}

// renderPage renders one page and writes it to its output path.
func (s *siteRenderer) renderPage(ctx context.Context, p pageToRender) renderResult {
	start := time.Now()
	result := renderResult{
		URLPath:    p.URLPath,
		OutputPath: p.OutputPath,
	}

	page, err := p.Collection.GetContent(ctx, p.URLPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	view := pageView{
		Title:       page.Title,
		SiteTitle:   s.siteTitle,
		Description: page.Meta.Description,
		Image:       page.Meta.Image,
		Style:       s.style,
		Content:     template.HTML(page.HTML), // #nosec G203 -- rendered from trusted content trees
		Nav:         page.NavIndex,
		TOC:         page.TOC,
		Footer:      s.footer,
	}

	var buf strings.Builder
	if err := s.tmpl.Execute(&buf, view); err != nil {
		result.Err = fmt.Errorf("executing page template: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	// #nosec G306 -- rendered pages are meant to be readable
	if err := os.WriteFile(p.OutputPath, []byte(buf.String()), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs render results using the provided writers.
func printResults(results []renderResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.URLPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", r.URLPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
