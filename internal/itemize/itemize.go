// Package itemize splits freeform model output into an ordered list of
// discrete items. Model prose usually arrives as a numbered or bulleted
// list, but the format is not guaranteed; this is a line heuristic that
// degrades gracefully rather than failing on unexpected shapes.
package itemize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// continuationMinRunes is the minimum length for an unmarked line to count
// as a continuation of the previous item.
const continuationMinRunes = 10

// Items splits text into list items. A line starting with a digit or a
// bullet marker opens a new item with the marker stripped; a longer unmarked
// line continues the previous item; everything else is dropped. Output order
// matches input line order.
func Items(text string) []string {
	var items []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		first, _ := utf8.DecodeRuneInString(line)
		switch {
		case unicode.IsDigit(first):
			if content := stripNumberMarker(line); content != "" {
				items = append(items, content)
			}
		case first == '-' || first == '•' || first == '*':
			if content := strings.TrimSpace(line[len(string(first)):]); content != "" {
				items = append(items, content)
			}
		case utf8.RuneCountInString(line) > continuationMinRunes && len(items) > 0:
			items[len(items)-1] += " " + line
		}
	}

	return items
}

// stripNumberMarker removes a leading numeric marker ("1. ", "1) ", "12.",
// nested "1.2 ") and returns the remainder. Alternating digit and separator
// runs are consumed until neither matches.
func stripNumberMarker(line string) string {
	rest := line
	for {
		trimmed := strings.TrimLeft(rest, "0123456789")
		trimmed = strings.TrimLeft(trimmed, ".)")
		if trimmed == rest {
			break
		}
		rest = trimmed
	}
	return strings.TrimSpace(rest)
}
