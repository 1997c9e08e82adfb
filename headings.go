package docsite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// nonAlphanumeric matches runs of characters that are not allowed in a
// heading id.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a heading id from its text: lowercased, runs of
// non-alphanumeric characters replaced with "-", leading and trailing
// dashes trimmed. The same derivation backs both rendering and TOC
// extraction, so the two can never diverge.
func slugify(text string) string {
	s := strings.ToLower(text)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// headingIDs assigns per-document-unique ids to headings. It implements
// parser.IDs, so goldmark stores the generated id as the heading's id
// attribute during parsing. Collisions are disambiguated with an
// incrementing counter suffix: "usage", "usage-1", "usage-2".
type headingIDs struct {
	used map[string]bool
}

func newHeadingIDs() parser.IDs {
	return &headingIDs{used: map[string]bool{}}
}

func (h *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := slugify(string(value))
	if base == "" {
		base = "heading"
	}

	id := base
	for i := 1; h.used[id]; i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	h.used[id] = true
	return []byte(id)
}

func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = true
}
