package docsite

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Custom block nodes produced by the transform passes. They only exist
// between parsing and rendering; the blockHTMLRenderer below knows how
// to turn each of them into HTML.

// tableWrapper wraps a table in a horizontally scrollable container.
type tableWrapper struct {
	ast.BaseBlock
}

var kindTableWrapper = ast.NewNodeKind("TableWrapper")

func (n *tableWrapper) Kind() ast.NodeKind { return kindTableWrapper }

func (n *tableWrapper) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

func newTableWrapper() *tableWrapper {
	return &tableWrapper{}
}

// tabGroup is a group of tabbed panes built from {% tabs %} markup.
type tabGroup struct {
	ast.BaseBlock
}

var kindTabGroup = ast.NewNodeKind("TabGroup")

func (n *tabGroup) Kind() ast.NodeKind { return kindTabGroup }

func (n *tabGroup) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

func newTabGroup() *tabGroup {
	return &tabGroup{}
}

// tabItem is one labeled pane inside a tabGroup.
type tabItem struct {
	ast.BaseBlock
	Title string
}

var kindTabItem = ast.NewNodeKind("TabItem")

func (n *tabItem) Kind() ast.NodeKind { return kindTabItem }

func (n *tabItem) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Title": n.Title}, nil)
}

func newTabItem(title string) *tabItem {
	return &tabItem{Title: title}
}

// admonition is a styled callout built from {% hint %} markup.
type admonition struct {
	ast.BaseBlock
	Style string
}

var kindAdmonition = ast.NewNodeKind("Admonition")

func (n *admonition) Kind() ast.NodeKind { return kindAdmonition }

func (n *admonition) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Style": n.Style}, nil)
}

func newAdmonition(style string) *admonition {
	return &admonition{Style: style}
}

// blockHTMLRenderer renders the custom block nodes.
type blockHTMLRenderer struct{}

func newBlockHTMLRenderer() renderer.NodeRenderer {
	return &blockHTMLRenderer{}
}

func (r *blockHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindTableWrapper, r.renderTableWrapper)
	reg.Register(kindTabGroup, r.renderTabGroup)
	reg.Register(kindTabItem, r.renderTabItem)
	reg.Register(kindAdmonition, r.renderAdmonition)
}

func (r *blockHTMLRenderer) renderTableWrapper(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		// Class string styled by the dashboard CSS; keep verbatim.
		_, _ = w.WriteString("<div class=\"overflow-auto w-100\">\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

func (r *blockHTMLRenderer) renderTabGroup(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<div class=\"tabs\">\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

func (r *blockHTMLRenderer) renderTabItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*tabItem)
	if entering {
		_, _ = w.WriteString("<div class=\"tab\" data-title=\"")
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("\">\n<div class=\"tab-title\">")
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</div>\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

func (r *blockHTMLRenderer) renderAdmonition(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*admonition)
	if entering {
		_, _ = w.WriteString("<div class=\"admonition admonition-")
		_, _ = w.Write(util.EscapeHTML([]byte(n.Style)))
		_, _ = w.WriteString("\">\n<div class=\"admonition-title\">")
		_, _ = w.Write(util.EscapeHTML([]byte(admonitionTitle(n.Style))))
		_, _ = w.WriteString("</div>\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

// admonitionTitle capitalizes the style name for display.
func admonitionTitle(style string) string {
	if style == "" {
		return ""
	}
	return strings.ToUpper(style[:1]) + style[1:]
}
