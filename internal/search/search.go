// Package search finds the lines of a text that contain a literal query.
//
// Matching is case-sensitive and byte-exact: no regular expressions, no
// case folding and no Unicode normalisation. An empty query matches every
// line. Every function here is pure; iterators can be ranged over any number
// of times and always produce the same sequence.
package search

import (
	"iter"
	"strings"

	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

// Lines yields every line of text with its 1-based line number.
//
// Lines are terminated by "\n" or "\r\n"; the terminator is not part of the
// line. A final terminator does not start an extra empty line, and empty text
// has no lines.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		rest := text
		for n := 1; len(rest) > 0; n++ {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line = strings.TrimSuffix(rest[:i], "\r")
				rest = rest[i+1:]
			} else {
				rest = ""
			}
			if !yield(n, line) {
				return
			}
		}
	}
}

// Matches yields, in order, every line of text that contains query.
func Matches(query, text string) iter.Seq[tt.Match] {
	return func(yield func(tt.Match) bool) {
		for n, line := range Lines(text) {
			if !strings.Contains(line, query) {
				continue
			}
			if !yield(tt.Match{Line: n, Text: line}) {
				return
			}
		}
	}
}

// Collect returns all matches of query in text.
func Collect(query, text string) []tt.Match {
	matches := make([]tt.Match, 0)
	for m := range Matches(query, text) {
		matches = append(matches, m)
	}
	return matches
}

// Search returns the text of every line of text that contains query.
func Search(query, text string) []string {
	lines := make([]string, 0)
	for m := range Matches(query, text) {
		lines = append(lines, m.Text)
	}
	return lines
}
