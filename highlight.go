package docsite

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// syntaxHighlightClass is the marker class the dashboard stylesheet
// targets. Contract with the styling layer; must be emitted verbatim.
const syntaxHighlightClass = "syntax-highlight"

// codeHighlightRenderer replaces goldmark's fenced code block rendering
// with chroma-based token highlighting.
type codeHighlightRenderer struct{}

func newCodeHighlightRenderer() renderer.NodeRenderer {
	return &codeHighlightRenderer{}
}

func (r *codeHighlightRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeHighlightRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	language := ""
	if l := n.Language(source); l != nil {
		language = string(l)
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	writeCodeBlock(w, language, code.String())
	return ast.WalkContinue, nil
}

// writeCodeBlock emits a <pre><code> block. Recognized languages get
// every non-whitespace token wrapped in the contracted highlight span;
// unknown or absent languages render as plain escaped text.
func writeCodeBlock(w util.BufWriter, language, code string) {
	if language == "" {
		_, _ = w.WriteString("<pre><code>")
	} else {
		_, _ = w.WriteString("<pre><code class=\"language-")
		_, _ = w.Write(util.EscapeHTML([]byte(language)))
		_, _ = w.WriteString("\">")
	}

	if !writeHighlightedTokens(w, language, code) {
		_, _ = w.Write(util.EscapeHTML([]byte(code)))
	}

	_, _ = w.WriteString("</code></pre>\n")
}

// writeHighlightedTokens tokenizes code with the lexer registered for
// language and writes each token wrapped in the highlight span.
// Returns false when no lexer exists or tokenizing fails, in which case
// nothing has been written and the caller falls back to plain text.
func writeHighlightedTokens(w util.BufWriter, language, code string) bool {
	if language == "" {
		return false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return false
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return false
	}

	for _, token := range iterator.Tokens() {
		if strings.TrimSpace(token.Value) == "" {
			// Whitespace between tokens stays unwrapped.
			_, _ = w.Write(util.EscapeHTML([]byte(token.Value)))
			continue
		}
		_, _ = w.WriteString("<span class=\"" + syntaxHighlightClass + "\">")
		_, _ = w.Write(util.EscapeHTML([]byte(token.Value)))
		_, _ = w.WriteString("</span>")
	}
	return true
}
