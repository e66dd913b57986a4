// Package search filters the lines of an in-memory text by substring.
package search

import "strings"

// Match is a matching line together with its 1-based position in the content.
type Match struct {
	Number int
	Text   string
}

// Search returns the lines of content that contain query, in order.
// The returned strings share memory with content.
func Search(query, content string, mode Mode) []string {
	matches := Lines(query, content, mode)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Text)
	}
	return out
}

// Lines is like Search but keeps line numbers.
func Lines(query, content string, mode Mode) []Match {
	if mode == CaseInsensitive {
		query = strings.ToLower(query)
	}
	var out []Match
	n := 0
	for rest := content; rest != ""; {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = strings.TrimSuffix(rest[:i], "\r"), rest[i+1:]
		} else {
			line, rest = rest, ""
		}
		n++
		if contains(line, query, mode) {
			out = append(out, Match{Number: n, Text: line})
		}
	}
	return out
}

// query must already be lowercased for CaseInsensitive.
func contains(line, query string, mode Mode) bool {
	if mode == CaseInsensitive {
		return strings.Contains(strings.ToLower(line), query)
	}
	return strings.Contains(line, query)
}
