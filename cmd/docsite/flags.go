package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// prerenderFlags holds all CLI flags for the prerender run.
type prerenderFlags struct {
	config      string
	contentDir  string
	output      string
	collections []string
	workers     int
	style       string
	assetPath   string
	siteTitle   string
	footer      string
	date        string
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*prerenderFlags, []string, error) {
	fs := flag.NewFlagSet("docsite", flag.ContinueOnError)
	f := &prerenderFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.contentDir, "content-dir", "d", "", "directory containing one folder per collection")
	fs.StringVarP(&f.output, "output", "o", "", "output directory for rendered pages")
	fs.StringSliceVar(&f.collections, "collections", nil, "collection names to render")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel render workers (0 = auto)")
	fs.StringVar(&f.style, "style", "", "stylesheet name for rendered pages")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.siteTitle, "site-title", "", "site title appended to page titles")
	fs.StringVar(&f.footer, "footer", "", "footer text for rendered pages")
	fs.StringVar(&f.date, "date", "", "footer date: fixed text, auto, or auto:FORMAT")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `docsite - prerender Gitbook-style markdown collections to HTML

Usage:
  docsite [flags] [content-dir]

The content directory holds one folder per collection, each with a
SUMMARY.md navigation document, markdown pages, and optional assets
under .gitbook/assets/.

Flags:
  -c, --config string        config file name or path
  -d, --content-dir string   directory containing one folder per collection
  -o, --output string        output directory (default "public")
      --collections strings  collection names to render
  -w, --workers int          parallel render workers (0 = auto)
      --style string         stylesheet name (default "default")
      --asset-path string    custom asset directory
      --site-title string    site title appended to page titles
      --footer string        footer text for rendered pages
      --date string          footer date: fixed text, auto, or auto:FORMAT
  -q, --quiet                only show errors
  -v, --verbose              show per-page timing
      --version              print version and exit
`)
}
