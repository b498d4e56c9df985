// Package report renders duty roster change reports and monthly
// statistics as plain text.
//
// Rendering is pure: the same diff always produces the same text, so a
// dry run and a live run report identically.
package report
