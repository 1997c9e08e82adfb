// Package docsite renders Gitbook-style markdown content collections into
// HTML pages for a web dashboard.
//
// # Quick Start
//
// Load the collections once at startup and serve content from them:
//
//	lib, err := docsite.LoadAll(contentDir, []string{"Docs", "Blog", "Careers"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	docs, _ := lib.Collection("docs")
//	page, err := docs.GetContent(ctx, "guides/install")
//	if err != nil {
//	    // errors.Is(err, docsite.ErrNotFound) -> 404
//	}
//
// The page carries the rendered HTML, the document title, the table of
// contents, optional front-matter metadata, and a copy of the
// collection's navigation index. Combine it with the per-request values
// your layout needs:
//
//	data := page.PageData(currentUser, footerText)
//
// # Rendering Pipeline
//
// Each content request runs these stages:
//
//  1. Front-matter split (optional description/image block on "---")
//  2. Markdown parse via Goldmark (GFM: tables, strikethrough, autolinks)
//  3. Title and TOC extraction from the parsed tree
//  4. Table wrapping for horizontal scroll
//  5. Gitbook directive expansion ({% tabs %}, {% hint %})
//  6. HTML rendering with stable heading ids and chroma-highlighted
//     code fences
//
// Collections are immutable once loaded and safe to share across
// concurrent requests without locking; each request owns its own parse
// tree.
//
// # On-Disk Layout
//
// A collection named "Docs" is expected at:
//
//	<root>/docs/SUMMARY.md              navigation tree
//	<root>/docs/<path>.md               content pages
//	<root>/docs/.gitbook/assets/<file>  static assets
package docsite
