// Package report renders validation, coverage, and distribution summaries
// from pongo2 templates. The embedded defaults cover text and HTML output;
// callers can point the renderer at their own template tree instead.
package report
