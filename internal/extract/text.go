// Package extract turns free-text search snippets into structured price,
// rating and product facts. Every extractor is best effort: it never fails
// and reports a miss as an absent field.
package extract

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// amount matches "10,000" style groups or a bare digit run, with an optional
// decimal tail. Group 1 holds the whole number.
const amount = `((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)`

// integer is amount without the decimal tail.
const integer = `((?:\d{1,3}(?:,\d{3})+|\d+))`

// Normalize composes text to NFC so decomposed Hangul compares equal to the
// keyword tables.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Fold is Normalize followed by lower-casing, for case-insensitive matching.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// parseAmount strips grouping commas and dots and parses the digits.
func parseAmount(s string) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// lowerRunes lower-cases rune by rune so offsets stay aligned with the input.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// runeOffsets returns the rune positions of every occurrence of word in s.
func runeOffsets(s, word string) []int {
	var out []int
	if word == "" {
		return out
	}
	base := 0
	for {
		i := strings.Index(s[base:], word)
		if i < 0 {
			return out
		}
		out = append(out, utf8.RuneCountInString(s[:base+i]))
		base += i + len(word)
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
