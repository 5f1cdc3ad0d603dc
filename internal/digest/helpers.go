package digest

import (
	"strings"
	"time"
)

// Sentence joins words with natural-language connectors:
// [] -> "", [a] -> "a", [a b] -> "a and b", [a b c] -> "a, b, and c".
func Sentence(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
	}
}

// prettyDate renders a short human date, e.g. "Sep 30, 2022".
func prettyDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
