// Package assets loads the stylesheets and page templates used when
// prerendering content collections to static HTML.
//
// Assets are embedded in the binary by default. A custom asset
// directory can be layered on top; names found there take precedence
// and anything missing falls back to the embedded set.
package assets
