package docsite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDocsFixture lays out a minimal collection on disk:
//
//	<root>/docs/SUMMARY.md
//	<root>/docs/README.md
//	<root>/docs/install.md
//	<root>/docs/install/README.md
//	<root>/docs/untitled.md
//	<root>/docs/.gitbook/assets/logo.svg
func writeDocsFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")

	files := map[string]string{
		"SUMMARY.md":               "- [Home](README.md)\n- [Install](install.md)\n  - [Overview](install/README.md)\n",
		"README.md":                "# Home\n\nWelcome.\n",
		"install.md":               "---\ndescription: How to install\n---\n# Install\n\nSteps.\n",
		"install/README.md":        "# Install Overview\n\nIntro.\n",
		"untitled.md":              "No heading here.\n",
		".gitbook/assets/logo.svg": "<svg/>",
	}
	for rel, content := range files {
		full := filepath.Join(docs, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoad(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Name() != "Docs" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Docs")
	}
	index := c.Index()
	if len(index) != 2 {
		t.Fatalf("Index() has %d entries, want 2: %+v", len(index), index)
	}
	if index[0].HRef != "/docs/" || index[1].HRef != "/docs/install" {
		t.Errorf("Index() hrefs = %q, %q", index[0].HRef, index[1].HRef)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		if _, err := Load("  ", t.TempDir()); !errors.Is(err, ErrEmptyCollectionName) {
			t.Errorf("Load() error = %v, want ErrEmptyCollectionName", err)
		}
	})

	t.Run("missing summary", func(t *testing.T) {
		t.Parallel()
		if _, err := Load("Docs", t.TempDir()); !errors.Is(err, ErrMissingSummary) {
			t.Errorf("Load() error = %v, want ErrMissingSummary", err)
		}
	})

	t.Run("summary without entries", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		docs := filepath.Join(root, "docs")
		if err := os.MkdirAll(docs, 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(docs, "SUMMARY.md"), []byte("# Summary\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load("Docs", root); !errors.Is(err, ErrSummaryParse) {
			t.Errorf("Load() error = %v, want ErrSummaryParse", err)
		}
	})

	t.Run("nil logger option panics", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if recover() == nil {
				t.Error("WithLogger(nil) did not panic")
			}
		}()
		_, _ = Load("Docs", t.TempDir(), WithLogger(nil))
	})
}

func TestGetContentPathMapping(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name      string
		relPath   string
		wantTitle string
	}{
		{
			name:      "empty path maps to root readme",
			relPath:   "",
			wantTitle: "Home",
		},
		{
			name:      "trailing slash maps to directory readme",
			relPath:   "install/",
			wantTitle: "Install Overview",
		},
		{
			name:      "bare path maps to file",
			relPath:   "install",
			wantTitle: "Install",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := c.GetContent(context.Background(), tt.relPath)
			if err != nil {
				t.Fatalf("GetContent(%q) error = %v", tt.relPath, err)
			}
			if page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
			if page.Collection != "Docs" {
				t.Errorf("Collection = %q, want %q", page.Collection, "Docs")
			}
			if len(page.NavIndex) == 0 {
				t.Error("NavIndex is empty")
			}
		})
	}
}

func TestGetContentFrontMatter(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	page, err := c.GetContent(context.Background(), "install")
	if err != nil {
		t.Fatalf("GetContent() error = %v", err)
	}
	if page.Meta.Description != "How to install" {
		t.Errorf("Meta.Description = %q, want %q", page.Meta.Description, "How to install")
	}
	if strings.Contains(page.HTML, "description:") {
		t.Errorf("front matter leaked into HTML:\n%s", page.HTML)
	}
}

func TestGetContentErrors(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := c.GetContent(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetContent() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("traversal stays inside collection", func(t *testing.T) {
		t.Parallel()
		// Cleaning against a virtual root turns this into docs/SUMMARY.md.md,
		// which does not exist.
		if _, err := c.GetContent(context.Background(), "../../docs/SUMMARY"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetContent() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("page without title", func(t *testing.T) {
		t.Parallel()
		if _, err := c.GetContent(context.Background(), "untitled"); !errors.Is(err, ErrMissingTitle) {
			t.Errorf("GetContent() error = %v, want ErrMissingTitle", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := c.GetContent(ctx, "install"); !errors.Is(err, context.Canceled) {
			t.Errorf("GetContent() error = %v, want context.Canceled", err)
		}
	})
}

func TestGetAsset(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("existing asset", func(t *testing.T) {
		t.Parallel()
		f, err := c.GetAsset("logo.svg")
		if err != nil {
			t.Fatalf("GetAsset() error = %v", err)
		}
		defer f.Close()
		if !strings.HasSuffix(f.Name(), "logo.svg") {
			t.Errorf("opened %q, want logo.svg", f.Name())
		}
	})

	t.Run("missing asset", func(t *testing.T) {
		t.Parallel()
		if _, err := c.GetAsset("missing.png"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetAsset() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		if _, err := c.GetAsset(""); !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("GetAsset() error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := c.GetAsset("../../SUMMARY.md"); !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("GetAsset() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestIndexReturnsCopy(t *testing.T) {
	t.Parallel()

	root := writeDocsFixture(t)
	c, err := Load("Docs", root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	first := c.Index()
	first[0].Title = "MUTATED"
	if len(first[1].Children) > 0 {
		first[1].Children[0].Title = "MUTATED"
	}

	second := c.Index()
	if second[0].Title == "MUTATED" {
		t.Error("mutating the returned index leaked into the collection")
	}
	if len(second[1].Children) > 0 && second[1].Children[0].Title == "MUTATED" {
		t.Error("mutating nested children leaked into the collection")
	}
}
