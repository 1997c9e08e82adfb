package docsite

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A line holding nothing but a {% ... %} directive tag
	directiveLine = regexp.MustCompile(`^[ \t]*\{%[^%\n]*%\}[ \t]*$`)
)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	Preprocess(content string) string
}

// gitbookPreprocessor applies transformations before parsing.
type gitbookPreprocessor struct{}

// Preprocess normalizes line endings and isolates directive tags so the
// parser sees each {% ... %} marker as its own paragraph.
func (p *gitbookPreprocessor) Preprocess(content string) string {
	content = normalizeLineEndings(content)
	content = isolateDirectiveLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// isolateDirectiveLines surrounds directive tag lines with blank lines.
// Gitbook markup puts tags directly above and below their content, which
// would otherwise merge tag and content into a single paragraph. Lines
// inside fenced code blocks are left untouched so code samples showing
// directive syntax stay intact.
func isolateDirectiveLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if !inFence && directiveLine.MatchString(line) {
			out = append(out, "", trimmed, "")
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
