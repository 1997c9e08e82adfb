package docsite

import (
	"go.uber.org/zap"
)

// On-disk layout constants for a collection directory.
const (
	// SummaryFile defines a collection's navigation tree.
	SummaryFile = "SUMMARY.md"

	// ContentExt is the fixed extension for content files.
	ContentExt = ".md"

	// ReadmeBase is the document served for directory-style paths.
	ReadmeBase = "README"
)

// assetSubdir is where Gitbook stores a collection's static assets,
// relative to the collection root.
const assetSubdir = ".gitbook/assets"

// NavLink is one entry in a collection's navigation tree.
//
// A NavLink with an empty HRef and non-empty Children is an unlinked
// group header: it carries a title for display but does not resolve to
// a document of its own.
type NavLink struct {
	Title    string
	HRef     string
	Children []NavLink
}

// IsGroupHeader reports whether the link is an unlinked group header.
func (n NavLink) IsGroupHeader() bool {
	return n.HRef == "" && len(n.Children) > 0
}

// clone returns a deep copy of the link and its children.
func (n NavLink) clone() NavLink {
	out := NavLink{Title: n.Title, HRef: n.HRef}
	if len(n.Children) > 0 {
		out.Children = cloneNavLinks(n.Children)
	}
	return out
}

// cloneNavLinks deep-copies a navigation tree so callers can annotate
// per-request state without touching the shared index.
func cloneNavLinks(links []NavLink) []NavLink {
	out := make([]NavLink, len(links))
	for i, l := range links {
		out[i] = l.clone()
	}
	return out
}

// TocLink is one heading in a rendered document.
// ID matches the id attribute the renderer assigned to the heading.
type TocLink struct {
	Text  string
	ID    string
	Level int
}

// PageMeta holds the optional front-matter metadata of a content file.
// Empty string means the key was absent.
type PageMeta struct {
	Image       string
	Description string
}

// RenderedPage is the result of resolving and rendering one content path.
type RenderedPage struct {
	Title      string
	HTML       string
	TOC        []TocLink
	Meta       PageMeta
	NavIndex   []NavLink
	Collection string
}

// PageData is what the external page layout receives. The core never
// inspects User; it is carried through opaquely from the routing layer.
type PageData struct {
	Title       string
	HTML        string
	Image       string
	Description string
	User        any
	Collection  string
	NavIndex    []NavLink
	TOC         []TocLink
	Footer      string
}

// PageData combines the rendered page with the per-request values the
// routing layer supplies for the external layout.
func (p *RenderedPage) PageData(user any, footer string) PageData {
	return PageData{
		Title:       p.Title,
		HTML:        p.HTML,
		Image:       p.Meta.Image,
		Description: p.Meta.Description,
		User:        user,
		Collection:  p.Collection,
		NavIndex:    p.NavIndex,
		TOC:         p.TOC,
		Footer:      footer,
	}
}

// Option configures a Collection.
type Option func(*collectionConfig)

// collectionConfig holds internal configuration for Collection.
type collectionConfig struct {
	logger *zap.Logger
}

// defaultCollectionConfig returns a config that logs nowhere.
func defaultCollectionConfig() collectionConfig {
	return collectionConfig{logger: zap.NewNop()}
}

// WithLogger sets the logger used for content warnings and load progress.
// Panics if logger is nil (programmer error, similar to time.NewTicker).
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("docsite: WithLogger logger must not be nil")
	}
	return func(c *collectionConfig) {
		c.logger = logger
	}
}
