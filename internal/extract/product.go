package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
)

const (
	maxNameLength    = 100
	nameLineMin      = 10
	nameLineMax      = 80
	nameLineLookup   = 5
	specLineLookup   = 20
	specLineMax      = 200
	maxSpecLines     = 3
	specFallbackSize = 150

	// NoSpecs is reported when no result carries any content.
	NoSpecs = "스펙 정보 없음"
)

// ProductName picks a display name for a result: its title when short
// enough, otherwise the first plausible line of the content. It returns ""
// when nothing qualifies.
func ProductName(r domain.RawResult) string {
	name := strings.TrimSpace(r.Title)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		lines := strings.Split(r.Content, "\n")
		for i, line := range lines {
			if i >= nameLineLookup {
				break
			}
			n := utf8.RuneCountInString(line)
			if n > nameLineMin && n < nameLineMax {
				name = strings.TrimSpace(line)
				break
			}
		}
	}
	return Truncate(name, maxNameLength)
}

// Specs summarizes product specifications from result contents.
func Specs(results []domain.RawResult) string {
	contents := make([]string, 0, len(results))
	for _, r := range results {
		contents = append(contents, r.Content)
	}
	combined := strings.Join(contents, " ")
	words := catalog.SpecWords()

	var specs []string
	for i, line := range strings.Split(combined, "\n") {
		if i >= specLineLookup || len(specs) >= maxSpecLines {
			break
		}
		if utf8.RuneCountInString(line) >= specLineMax {
			continue
		}
		if containsAny(line, words) {
			specs = append(specs, strings.TrimSpace(line))
		}
	}
	if len(specs) > 0 {
		return strings.Join(specs, " | ")
	}

	if len(results) > 0 {
		first := results[0].Content
		if utf8.RuneCountInString(first) > specFallbackSize {
			return Truncate(first, specFallbackSize) + "..."
		}
		return first
	}
	return NoSpecs
}
