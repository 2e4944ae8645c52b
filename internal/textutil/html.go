package textutil

import (
	"os"
	"regexp"
	"unicode/utf8"
)

var htmlRE = regexp.MustCompile(`(?i)<html(\s[^>]*)?>|<head(\s[^>]*)?>|<body(\s[^>]*)?>|<!doctype\s*html\s*>`)

// IsHTML reports whether text contains a placeholder HTML body, sniffed by
// a case-insensitive match of <html>, <head>, <body>, or <!doctype html>
// (allowing intra-tag whitespace and attributes) anywhere in the string.
func IsHTML(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}
	return htmlRE.MatchString(text)
}

// IsHTMLFile reports whether the file at path sniffs as HTML. Any read or
// decode error is treated as "not HTML" rather than propagated, matching
// the fetcher's general policy of converting I/O failure into a negative
// result at this boundary.
func IsHTMLFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return IsHTML(string(data))
}
