package docsite

import (
	"strings"

	"github.com/alnah/go-docsite/internal/yamlutil"
)

// frontMatterDelimiter separates the metadata block from the body.
const frontMatterDelimiter = "---"

// splitFrontMatter separates the optional metadata block from the markdown
// body. The raw content is split on the literal "---" delimiter and the
// second segment is parsed as a YAML mapping with optional "description"
// and "image" keys.
//
// The fallback is deliberately lenient: if the second segment fails to
// parse, parses empty, or is not a mapping, the original content is
// returned untouched, delimiters included. A document using "---" only as
// a horizontal rule must keep its body intact.
func splitFrontMatter(content string) (PageMeta, string) {
	parts := strings.Split(content, frontMatterDelimiter)
	if len(parts) < 2 {
		return PageMeta{}, content
	}

	var block map[string]any
	if err := yamlutil.Unmarshal([]byte(parts[1]), &block); err != nil || len(block) == 0 {
		return PageMeta{}, content
	}

	meta := PageMeta{
		Image:       stringKey(block, "image"),
		Description: stringKey(block, "description"),
	}
	return meta, strings.Join(parts[2:], frontMatterDelimiter)
}

// stringKey extracts a string value from a parsed mapping.
// Missing keys and non-string values both yield "".
func stringKey(block map[string]any, key string) string {
	if v, ok := block[key].(string); ok {
		return v
	}
	return ""
}
