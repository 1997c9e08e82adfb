// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-docsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingSummary returns hints for a collection without a usable
// navigation document.
func ForMissingSummary() string {
	return format("each collection needs a SUMMARY.md with a nested list of links; " +
		"point --content-dir at the directory containing one folder per collection")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingTitle returns a hint for content pages without a heading.
func ForMissingTitle() string {
	return format("every content page needs a markdown heading for its title")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
