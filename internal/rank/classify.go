// Package rank biases search results toward the preferred marketplace. It
// splits results into a preferred and a general bucket, deduplicates them
// and drives the primary/fallback query plan that fills the buckets.
package rank

import (
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

// Classifier decides whether a result belongs to the preferred marketplace.
type Classifier struct {
	Domain  string
	Aliases []string
}

// NewClassifier creates a Classifier for domain, also matching aliases such
// as the marketplace's name.
func NewClassifier(domain string, aliases ...string) Classifier {
	c := Classifier{Domain: strings.ToLower(strings.TrimSpace(domain))}
	for _, a := range aliases {
		if a = extract.Fold(strings.TrimSpace(a)); a != "" {
			c.Aliases = append(c.Aliases, a)
		}
	}
	return c
}

// IsPreferred reports whether r links to or mentions the marketplace.
func (c Classifier) IsPreferred(r domain.RawResult) bool {
	url := strings.ToLower(r.URL)
	if c.Domain != "" && strings.Contains(url, c.Domain) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.Contains(url, a) {
			return true
		}
	}
	return c.Mentions(r.Title + " " + r.Content)
}

// Mentions reports whether text names the marketplace.
func (c Classifier) Mentions(text string) bool {
	text = extract.Fold(text)
	if c.Domain != "" && strings.Contains(text, c.Domain) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.Contains(text, a) {
			return true
		}
	}
	return false
}

// Partition splits results into preferred and general, keeping input order
// within each bucket.
func Partition(results []domain.RawResult, isPreferred func(domain.RawResult) bool) (preferred, general []domain.RawResult) {
	for _, r := range results {
		if isPreferred(r) {
			preferred = append(preferred, r)
		} else {
			general = append(general, r)
		}
	}
	return preferred, general
}

// Dedupe keeps the first item for every key. Items with an empty key are
// dropped.
func Dedupe[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// ByURL is a Dedupe key on the result URL.
func ByURL(r domain.RawResult) string {
	return strings.TrimSpace(r.URL)
}
