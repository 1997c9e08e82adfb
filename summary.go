package docsite

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
)

// errEmptySummary signals a summary document without any usable links.
var errEmptySummary = errors.New("no navigation entries found")

// parseSummary builds the navigation index of a collection from its
// summary document. The document is expected to contain nested lists of
// links; each list item becomes a NavLink rooted under /<collection>,
// with nested lists as children, preserving source order at every level.
//
// A malformed entry is skipped with a warning rather than aborting the
// index: a single bad line must not take down a whole collection.
// A summary that yields no entries at all is an error; the caller treats
// that as fatal at load time.
func parseSummary(source []byte, collection string, logger *zap.Logger) ([]NavLink, error) {
	root := "/" + strings.ToLower(collection)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var index []NavLink
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		list, ok := node.(*ast.List)
		if !ok {
			continue
		}
		index = append(index, convertList(list, root, source, logger)...)
	}

	if len(index) == 0 {
		return nil, errEmptySummary
	}
	return index, nil
}

// convertList converts a markdown list into navigation links.
func convertList(list *ast.List, root string, source []byte, logger *zap.Logger) []NavLink {
	var links []NavLink
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if link, ok := convertListItem(item, root, source, logger); ok {
			links = append(links, link)
		}
	}
	return links
}

// convertListItem converts one list item into a NavLink. Items with a
// link become regular entries; items without a link but with a nested
// list become unlinked group headers (empty HRef). Anything else is
// malformed and skipped.
func convertListItem(item ast.Node, root string, source []byte, logger *zap.Logger) (NavLink, bool) {
	var children []NavLink
	var link *ast.Link
	label := ""

	for node := item.FirstChild(); node != nil; node = node.NextSibling() {
		if nested, ok := node.(*ast.List); ok {
			children = append(children, convertList(nested, root, source, logger)...)
			continue
		}
		if link == nil {
			link = firstLink(node)
		}
		if label == "" {
			label = strings.TrimSpace(textOf(node, source))
		}
	}

	if link != nil {
		title := strings.TrimSpace(textOf(link, source))
		if title == "" {
			title = label
		}
		if title == "" {
			logger.Warn("skipping navigation entry without link text",
				zap.String("href", string(link.Destination)))
			return NavLink{}, false
		}
		return NavLink{
			Title:    title,
			HRef:     rewriteHref(string(link.Destination), root),
			Children: children,
		}, true
	}

	// No link: a labeled item with nested entries acts as a group header.
	if len(children) > 0 && label != "" {
		return NavLink{Title: label, Children: children}, true
	}

	logger.Warn("skipping malformed navigation entry", zap.String("text", label))
	return NavLink{}, false
}

// firstLink finds the first link node in a subtree, skipping nested lists.
func firstLink(n ast.Node) *ast.Link {
	var found *ast.Link
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Kind() == ast.KindList {
			return ast.WalkSkipChildren, nil
		}
		if link, ok := node.(*ast.Link); ok {
			found = link
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// rewriteHref roots a summary link under the collection's URL prefix.
// The fixed content extension is stripped so hrefs match the routing
// layer's path scheme, and README documents collapse to their directory
// path with a trailing slash. External URLs pass through unchanged.
func rewriteHref(dest, root string) string {
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return dest
	}

	p := strings.TrimPrefix(dest, "./")
	p = strings.TrimPrefix(p, "/")

	switch {
	case p == ReadmeBase+ContentExt:
		p = ""
	case strings.HasSuffix(p, "/"+ReadmeBase+ContentExt):
		p = strings.TrimSuffix(p, ReadmeBase+ContentExt)
	default:
		p = strings.TrimSuffix(p, ContentExt)
	}

	if p == "" {
		return root + "/"
	}
	return root + "/" + p
}
