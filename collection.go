package docsite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Collection is a Gitbook-style set of markdown documents sharing one
// navigation index and asset directory (e.g. Docs, Blog, Careers).
//
// A Collection is built once at startup and is immutable afterwards:
// the navigation index and directories are read-only, so a single
// instance is safe to share across concurrent requests without locking.
type Collection struct {
	name       string
	contentDir string
	assetDir   string
	index      []NavLink
	renderer   documentRenderer
	logger     *zap.Logger
}

// Load resolves name to its directory under rootDir, eagerly builds the
// navigation index from the summary document, and records the asset
// directory. A missing or unparseable summary is an error; callers are
// expected to fail process startup on it so the collection never comes
// online without navigation.
func Load(name, rootDir string, opts ...Option) (*Collection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCollectionName
	}

	cfg := defaultCollectionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	contentDir := filepath.Join(rootDir, strings.ToLower(name))
	summaryPath := filepath.Join(contentDir, SummaryFile)

	raw, err := os.ReadFile(summaryPath) // #nosec G304 -- path built from startup config
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSummary, summaryPath)
	}

	index, err := parseSummary(raw, name, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSummaryParse, summaryPath, err)
	}

	cfg.logger.Info("loaded collection",
		zap.String("collection", name),
		zap.Int("nav_links", len(index)))

	return &Collection{
		name:       name,
		contentDir: contentDir,
		assetDir:   filepath.Join(contentDir, filepath.FromSlash(assetSubdir)),
		index:      index,
		renderer:   newPageRenderer(),
		logger:     cfg.logger,
	}, nil
}

// Name returns the collection's display name.
func (c *Collection) Name() string {
	return c.name
}

// Index returns a copy of the navigation index. The shared index is
// never handed out directly so callers can annotate their copy freely.
func (c *Collection) Index() []NavLink {
	return cloneNavLinks(c.index)
}

// GetContent resolves a relative URL path to a content file, renders it,
// and returns the page together with the collection's navigation index.
// An empty or trailing-slash path maps to the README document. A file
// that is absent or unreadable yields ErrNotFound; a document without a
// title yields ErrMissingTitle.
func (c *Collection) GetContent(ctx context.Context, relPath string) (*RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath := c.contentFilePath(relPath)
	raw, err := os.ReadFile(filePath) // #nosec G304 -- path is root-anchored by contentFilePath
	if err != nil {
		c.logger.Warn("content file unreadable",
			zap.String("collection", c.name),
			zap.String("path", relPath),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, relPath)
	}

	meta, body := splitFrontMatter(string(raw))

	doc, err := c.renderer.Render(body)
	if err != nil {
		if errors.Is(err, ErrMissingTitle) {
			// Content-authoring bug; fail the request visibly.
			c.logger.Error("content page has no title",
				zap.String("collection", c.name),
				zap.String("file", filePath))
			return nil, fmt.Errorf("%w: %s", ErrMissingTitle, relPath)
		}
		return nil, fmt.Errorf("rendering %s: %w", relPath, err)
	}

	return &RenderedPage{
		Title:      doc.Title,
		HTML:       doc.HTML,
		TOC:        doc.TOC,
		Meta:       meta,
		NavIndex:   cloneNavLinks(c.index),
		Collection: c.name,
	}, nil
}

// GetAsset opens a file from the collection's asset directory. The
// resolved path must stay inside that directory; traversal attempts
// yield ErrInvalidAssetPath and missing files yield ErrNotFound.
// The caller owns the returned file and must close it.
func (c *Collection) GetAsset(relPath string) (*os.File, error) {
	full, err := c.assetFilePath(relPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full) // #nosec G304 -- containment verified above
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, relPath)
	}
	return f, nil
}

// contentFilePath maps a relative URL path to the content file on disk.
// "" and "install/" map to README documents; "install" maps to
// install.md. The path is cleaned against a virtual root first, so
// traversal segments cannot escape the content directory.
func (c *Collection) contentFilePath(relPath string) string {
	p := relPath
	if p == "" || strings.HasSuffix(p, "/") {
		p += ReadmeBase
	}
	clean := path.Clean("/" + p)
	return filepath.Join(c.contentDir, filepath.FromSlash(clean)+ContentExt)
}

// assetFilePath resolves a relative asset path and verifies containment
// within the asset directory. Symlinks are resolved before the prefix
// check so a link pointing outside the directory cannot escape it.
func (c *Collection) assetFilePath(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidAssetPath)
	}

	full, err := filepath.Abs(filepath.Join(c.assetDir, filepath.FromSlash(relPath)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if real, err := filepath.EvalSymlinks(full); err == nil {
		full = real
	}

	base, err := filepath.Abs(c.assetDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if real, err := filepath.EvalSymlinks(base); err == nil {
		base = real
	}

	// Separator suffix prevents prefix matches like /assets vs /assets-evil.
	if !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes asset directory", ErrInvalidAssetPath, relPath)
	}
	return full, nil
}
