// Package report renders crawl results for the operator.
//
// Two formats are supported: a human-readable text summary for the
// terminal (default) and GitHub Flavored Markdown for sharing or
// archiving. The set-catalog listing lives here too, with display-width
// aware column alignment since set names are CJK text.
package report
