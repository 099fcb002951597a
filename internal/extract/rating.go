package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

var genericRatingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`평점\s*:\s*([\d.]+)\s*/?\s*5`),
	regexp.MustCompile(`([\d.]+)\s*점\s*/?\s*5`),
	regexp.MustCompile(`(?i)([\d.]+)\s*out\s+of\s+5`),
	regexp.MustCompile(`(?i)rating\s*:?\s*([\d.]+)\s*/\s*5`),
}

var reviewCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`리뷰\s*:?\s*` + integer),
	regexp.MustCompile(`후기\s*:?\s*` + integer),
	regexp.MustCompile(`(?i)reviews?\s*:?\s*` + integer),
}

// RatingExtractor pulls RatingInfo out of free text. All patterns assume a
// five point scale.
type RatingExtractor struct {
	patterns []*regexp.Regexp
}

// NewRatingExtractor creates a RatingExtractor that also understands
// "<marketplace> 평점: 4.5/5" phrasings for each of the marketplace names.
func NewRatingExtractor(marketplaceNames ...string) *RatingExtractor {
	var patterns []*regexp.Regexp
	var quoted []string
	for _, name := range marketplaceNames {
		if name = strings.TrimSpace(name); name != "" {
			quoted = append(quoted, regexp.QuoteMeta(name))
		}
	}
	if len(quoted) > 0 {
		names := `(?:` + strings.Join(quoted, "|") + `)`
		patterns = append(patterns,
			regexp.MustCompile(`(?i)`+names+`\s*평점\s*:\s*([\d.]+)\s*/?\s*5`),
			regexp.MustCompile(`(?i)`+names+`\s*:?\s*([\d.]+)\s*/?\s*5`),
		)
	}
	patterns = append(patterns, genericRatingPatterns...)
	return &RatingExtractor{patterns: patterns}
}

// Extract returns the mean of every rating mention and the largest review
// count found in text. Duplicate mentions are averaged, not deduplicated.
func (e *RatingExtractor) Extract(text string) domain.RatingInfo {
	var info domain.RatingInfo
	text = Normalize(text)

	var sum float64
	var n int
	for _, re := range e.patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil || v < 0 || v > 5 {
				continue
			}
			sum += v
			n++
		}
	}
	if n > 0 {
		info.Rating = domain.FloatPtr(math.Round(sum/float64(n)*100) / 100)
	}

	var counts []int
	for _, re := range reviewCountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := parseAmount(m[1]); ok {
				counts = append(counts, v)
			}
		}
	}
	if v, ok := maxOf(counts); ok {
		info.ReviewCount = domain.IntPtr(v)
	}

	return info
}
