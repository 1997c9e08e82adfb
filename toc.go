package docsite

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// documentTitle returns the text of the first heading that is a direct
// child of the document root, in document order. The second return value
// is false when the document has no such heading.
func documentTitle(doc ast.Node, source []byte) (string, bool) {
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok {
			return textOf(heading, source), true
		}
	}
	return "", false
}

// tableOfContents collects every heading in document order. The id of
// each entry is read back from the attribute the heading id generator
// stored on the node during parsing.
func tableOfContents(doc ast.Node, source []byte) []TocLink {
	var toc []TocLink
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		toc = append(toc, TocLink{
			Text:  textOf(heading, source),
			ID:    headingID(heading),
			Level: heading.Level,
		})
		return ast.WalkContinue, nil
	})
	return toc
}

// headingID reads the id attribute assigned during parsing.
func headingID(heading *ast.Heading) string {
	v, ok := heading.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// textOf returns the concatenated plain text of a node's descendants.
func textOf(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
