package docsite

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// Precompiled patterns for Gitbook block directives. A directive marker
// is a paragraph whose entire text is a {% ... %} tag.
var (
	directivePattern = regexp.MustCompile(`^\{%\s*([a-z]+)\b([^%]*)%\}$`)
	directiveAttrs   = regexp.MustCompile(`([a-z]+)="([^"]*)"`)
)

// wrapTables inserts a scroll container around every table so wide
// tables scroll horizontally instead of breaking the page layout.
// Already-wrapped tables are left alone, which makes the pass idempotent.
// No-op for documents without tables.
func wrapTables(doc ast.Node) {
	var tables []ast.Node
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != extast.KindTable {
			return ast.WalkContinue, nil
		}
		if parent := node.Parent(); parent != nil && parent.Kind() != kindTableWrapper {
			tables = append(tables, node)
		}
		return ast.WalkContinue, nil
	})

	for _, table := range tables {
		parent := table.Parent()
		wrapper := newTableWrapper()
		parent.ReplaceChild(parent, table, wrapper)
		wrapper.AppendChild(wrapper, table)
	}
}

// directiveMarker describes one parsed {% ... %} tag.
type directiveMarker struct {
	name  string
	attrs map[string]string
}

// parseDirectiveMarker recognizes a paragraph that consists solely of a
// directive tag. Anything else, including directive-like text embedded
// in prose, is not a marker and stays literal.
func parseDirectiveMarker(node ast.Node, source []byte) (directiveMarker, bool) {
	para, ok := node.(*ast.Paragraph)
	if !ok {
		return directiveMarker{}, false
	}
	text := strings.TrimSpace(textOf(para, source))
	m := directivePattern.FindStringSubmatch(text)
	if m == nil {
		return directiveMarker{}, false
	}

	attrs := map[string]string{}
	for _, kv := range directiveAttrs.FindAllStringSubmatch(m[2], -1) {
		attrs[kv[1]] = kv[2]
	}
	return directiveMarker{name: m[1], attrs: attrs}, true
}

// expandDirectives rewrites recognized Gitbook directive markup into
// structural nodes: {% tabs %} groups become tab containers and
// {% hint %} blocks become admonitions. Unrecognized or unterminated
// directive syntax passes through as literal text, never an error.
func expandDirectives(doc ast.Node, source []byte) {
	expandIn(doc, source)
}

func expandIn(parent ast.Node, source []byte) {
	node := parent.FirstChild()
	for node != nil {
		next := node.NextSibling()

		marker, ok := parseDirectiveMarker(node, source)
		if !ok {
			if node.HasChildren() {
				expandIn(node, source)
			}
			node = next
			continue
		}

		switch marker.name {
		case "tabs":
			if end := findCloseMarker(node, "endtabs", source); end != nil {
				next = end.NextSibling()
				buildTabGroup(parent, node, end, source)
			}
		case "hint":
			if end := findCloseMarker(node, "endhint", source); end != nil {
				next = end.NextSibling()
				buildAdmonition(parent, node, end, marker.attrs["style"], source)
			}
		}
		// Unknown directive names and unterminated blocks fall through
		// untouched and render as the literal paragraph text.
		node = next
	}
}

// findCloseMarker scans forward through siblings for the matching close
// tag. Returns nil when the block is unterminated.
func findCloseMarker(open ast.Node, name string, source []byte) ast.Node {
	for node := open.NextSibling(); node != nil; node = node.NextSibling() {
		if marker, ok := parseDirectiveMarker(node, source); ok && marker.name == name {
			return node
		}
	}
	return nil
}

// buildTabGroup replaces the nodes between {% tabs %} and {% endtabs %}
// with a tabGroup node. Each {% tab title="..." %} ... {% endtab %} span
// becomes one labeled tabItem child; blocks outside any tab attach to
// the group directly. Source order is preserved throughout.
func buildTabGroup(parent, open, close ast.Node, source []byte) {
	group := newTabGroup()
	parent.InsertBefore(parent, open, group)

	var current *tabItem
	for node := open.NextSibling(); node != close; {
		next := node.NextSibling()
		if marker, ok := parseDirectiveMarker(node, source); ok {
			switch marker.name {
			case "tab":
				current = newTabItem(marker.attrs["title"])
				group.AppendChild(group, current)
				parent.RemoveChild(parent, node)
				node = next
				continue
			case "endtab":
				current = nil
				parent.RemoveChild(parent, node)
				node = next
				continue
			}
		}

		parent.RemoveChild(parent, node)
		if current != nil {
			current.AppendChild(current, node)
		} else {
			group.AppendChild(group, node)
		}
		node = next
	}

	parent.RemoveChild(parent, open)
	parent.RemoveChild(parent, close)

	// Tab panes may themselves contain directives.
	expandIn(group, source)
}

// buildAdmonition replaces the nodes between {% hint %} and {% endhint %}
// with an admonition node carrying the hint style.
func buildAdmonition(parent, open, close ast.Node, style string, source []byte) {
	if style == "" {
		style = "info"
	}
	adm := newAdmonition(style)
	parent.InsertBefore(parent, open, adm)

	for node := open.NextSibling(); node != close; {
		next := node.NextSibling()
		parent.RemoveChild(parent, node)
		adm.AppendChild(adm, node)
		node = next
	}

	parent.RemoveChild(parent, open)
	parent.RemoveChild(parent, close)

	expandIn(adm, source)
}
