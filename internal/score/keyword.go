package score

import (
	"strings"

	"github.com/cloo-solutions/shopmate/internal/extract"
)

// neutralMatch is returned when there is nothing to match against.
const neutralMatch = 50

// KeywordMatch returns the percentage of keywords found in title or content,
// truncated to an integer.
func KeywordMatch(title, content string, keywords []string) float64 {
	if len(keywords) == 0 {
		return neutralMatch
	}
	text := extract.Fold(title + " " + content)

	var matches int
	for _, kw := range keywords {
		if kw = extract.Fold(kw); kw != "" && strings.Contains(text, kw) {
			matches++
		}
	}
	return float64(matches * 100 / len(keywords))
}
