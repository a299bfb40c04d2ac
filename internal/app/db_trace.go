package app

import (
	"strings"
	"unicode/utf8"
)

// maxTracedQueryBytes bounds the db.statement span attribute.
const maxTracedQueryBytes = 512

// formatDBQueryForTrace flattens a statement onto one line for span
// attributes. Line comments are dropped and long statements are cut on a
// rune boundary.
func formatDBQueryForTrace(query string) string {
	var b strings.Builder
	for _, line := range strings.Split(query, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		for _, word := range strings.Fields(line) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word)
		}
	}

	out := b.String()
	if len(out) <= maxTracedQueryBytes {
		return out
	}
	cut := maxTracedQueryBytes
	for cut > 0 && !utf8.RuneStart(out[cut]) {
		cut--
	}
	return out[:cut] + "..."
}
