package docsite

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// renderedDoc is the output of rendering one markdown body.
type renderedDoc struct {
	Title string
	HTML  string
	TOC   []TocLink
}

// documentRenderer abstracts the markdown rendering pipeline.
type documentRenderer interface {
	Render(content string) (*renderedDoc, error)
}

// pageRenderer renders markdown bodies using goldmark (pure Go) with the
// Gitbook transforms applied between parse and render. The instance is
// stateless and safe to share across concurrent requests; per-document
// state (heading ids) lives in the parser context of each call.
type pageRenderer struct {
	preprocessor markdownPreprocessor
	md           goldmark.Markdown
}

// newPageRenderer creates a pageRenderer with GFM extensions and the
// custom render behaviors for headings, code fences, and directives.
func newPageRenderer() *pageRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // ids generated by headingIDs below
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),  // Self-closing tags
			html.WithUnsafe(), // Content trees embed raw HTML snippets
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeHighlightRenderer(), 200),
				util.Prioritized(newBlockHTMLRenderer(), 500),
			),
		),
	)
	return &pageRenderer{
		preprocessor: &gitbookPreprocessor{},
		md:           md,
	}
}

// Render turns a markdown body into HTML plus the title and TOC derived
// from its structure. Pass order matters: each stage mutates the shared
// tree before the next runs. Returns ErrMissingTitle when the document
// has no heading at its top nesting level.
func (r *pageRenderer) Render(content string) (*renderedDoc, error) {
	source := []byte(r.preprocessor.Preprocess(content))

	reader := text.NewReader(source)
	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	doc := r.md.Parser().Parse(reader, parser.WithContext(pctx))

	title, ok := documentTitle(doc, source)
	if !ok {
		return nil, ErrMissingTitle
	}
	toc := tableOfContents(doc, source)

	wrapTables(doc)
	expandDirectives(doc, source)

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	return &renderedDoc{
		Title: title,
		HTML:  buf.String(),
		TOC:   toc,
	}, nil
}
