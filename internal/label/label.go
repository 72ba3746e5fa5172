// Package label derives human-friendly captions from field names.
package label

import (
	"regexp"
	"strings"
)

var separatorPattern = regexp.MustCompile(`[._\-\s]+`)

// Humanize converts a field name into a display label. It splits on dots,
// underscores, dashes and camelCase boundaries, then title-cases each word.
func Humanize(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	for _, chunk := range separatorPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range breakCamel(chunk) {
			words = append(words, titleWord(word))
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

func breakCamel(input string) []string {
	var words []string
	start := 0
	runes := []rune(input)
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func camelBoundary(prev, r rune) bool {
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
