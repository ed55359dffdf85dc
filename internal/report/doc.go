// Package report renders assembled announcement records.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain text digest, one entry per announcement
//   - MarkdownWriter: a Markdown document with tables and a verdict chart
//   - JSONWriter: structured JSON for other tools
//
// Writers implement the Writer interface and never reorder records: output
// order is input order, and the same records always render to the same bytes.
package report
