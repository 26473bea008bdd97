// Package textutil provides text layout helpers for terminal help output.
package textutil

import "strings"

// Wrap greedily wraps text into lines of at most width characters, collapsing
// runs of whitespace. A word longer than width occupies a line of its own.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) > width:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
		default:
			line.WriteByte(' ')
			line.WriteString(word)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
