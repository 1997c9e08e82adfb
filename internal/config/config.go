// Package config loads and validates prerender configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docsite/internal/fileutil"
	"github.com/alnah/go-docsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field limits for config values.
const (
	MaxSiteTitleLength = 200  // Site title shown in page <title>
	MaxFooterLength    = 500  // Free-form footer text
	MaxDateLength      = 50   // "auto", "auto:FORMAT", or a fixed date
	MaxStyleLength     = 100  // Style name or short path
	MaxPathLength      = 1024 // Directory paths
	MaxCollections     = 50   // Collections per site
	MaxWorkers         = 64   // Upper bound for the render pool
)

// Config holds all configuration for prerendering a site.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Site    SiteConfig    `yaml:"site"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// ContentConfig locates the collections on disk.
type ContentConfig struct {
	Dir         string   `yaml:"dir"`         // Root containing one subdirectory per collection
	Collections []string `yaml:"collections"` // Collection names, e.g. [Docs, Blog, Careers]
}

// OutputConfig defines where prerendered pages are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = ./public)
}

// RenderConfig tunes the render worker pool.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 = auto from GOMAXPROCS
}

// SiteConfig holds values injected into every rendered page.
type SiteConfig struct {
	Title  string `yaml:"title"`  // Appended to each page title
	Footer string `yaml:"footer"` // Footer text (empty = no footer)
	Date   string `yaml:"date"`   // Footer date: "auto", "auto:FORMAT", or fixed
	Style  string `yaml:"style"`  // Stylesheet name (empty = "default")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
}

// Validate checks field lengths and ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("content.dir", c.Content.Dir, MaxPathLength); err != nil {
		return err
	}
	if len(c.Content.Collections) > MaxCollections {
		return fmt.Errorf("content.collections: %d entries exceeds maximum of %d",
			len(c.Content.Collections), MaxCollections)
	}
	for i, name := range c.Content.Collections {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("content.collections[%d]: name cannot be empty", i)
		}
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers must be 0-%d, got %d",
			ErrInvalidWorkers, MaxWorkers, c.Render.Workers)
	}

	if err := validateFieldLength("site.title", c.Site.Title, MaxSiteTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.footer", c.Site.Footer, MaxFooterLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.date", c.Site.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.style", c.Site.Style, MaxStyleLength); err != nil {
		return err
	}

	return validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: "", Collections: nil},
		Output:  OutputConfig{Dir: ""},
		Render:  RenderConfig{Workers: 0},
		Site:    SiteConfig{Style: ""},
		Assets:  AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations
// in order: current directory, then ~/.config/go-docsite/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-docsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
