// Package score ranks candidates. RelevanceScorer measures fit against a
// user's preferences, Value measures price/rating value for comparisons and
// KeywordMatch is the heuristic stand-in for an LLM relevance judge.
package score

import (
	"strings"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

// Weights are the additive relevance terms. Every per-match term is capped
// independently.
type Weights struct {
	PreferredBonus float64

	StylePerMatch float64
	StyleCap      float64

	BrandPerMatch float64
	BrandCap      float64

	BudgetInRange float64
	BudgetNear    float64
	// NearLow and NearHigh scale the budget bounds for the BudgetNear term.
	NearLow  float64
	NearHigh float64

	KeywordPerMatch float64
	KeywordCap      float64
}

// DefaultWeights returns the tuned relevance weights.
func DefaultWeights() Weights {
	return Weights{
		PreferredBonus:  25,
		StylePerMatch:   2,
		StyleCap:        10,
		BrandPerMatch:   5,
		BrandCap:        15,
		BudgetInRange:   20,
		BudgetNear:      10,
		NearLow:         0.8,
		NearHigh:        1.2,
		KeywordPerMatch: 3,
		KeywordCap:      10,
	}
}

// Breakdown is a relevance score split by term.
type Breakdown struct {
	Preferred float64 `json:"preferred"`
	Style     float64 `json:"style"`
	Brand     float64 `json:"brand"`
	Budget    float64 `json:"budget"`
	Keyword   float64 `json:"keyword"`
}

// Total sums the terms.
func (b Breakdown) Total() float64 {
	return b.Preferred + b.Style + b.Brand + b.Budget + b.Keyword
}

// RelevanceScorer scores candidate text against preferences.
type RelevanceScorer struct {
	weights Weights
}

// NewRelevanceScorer creates a scorer.
func NewRelevanceScorer(weights Weights) *RelevanceScorer {
	return &RelevanceScorer{weights: weights}
}

// Score returns the total relevance of text with the given extracted price.
// preferred reports whether the candidate's URL or text belongs to the
// preferred marketplace.
func (s *RelevanceScorer) Score(text string, preferred bool, price *int, prefs domain.Preferences) float64 {
	return s.Breakdown(text, preferred, price, prefs).Total()
}

// Breakdown returns the individual relevance terms.
func (s *RelevanceScorer) Breakdown(text string, preferred bool, price *int, prefs domain.Preferences) Breakdown {
	w := s.weights
	text = extract.Fold(text)

	var b Breakdown
	if preferred {
		b.Preferred = w.PreferredBonus
	}

	var styles int
	for _, style := range prefs.Styles {
		for _, syn := range catalog.StyleSynonyms(style) {
			if strings.Contains(text, strings.ToLower(syn)) {
				styles++
			}
		}
	}
	b.Style = capped(styles, w.StylePerMatch, w.StyleCap)

	var brands int
	for _, brand := range prefs.Brands {
		if strings.Contains(text, strings.ToLower(brand)) {
			brands++
		}
	}
	b.Brand = capped(brands, w.BrandPerMatch, w.BrandCap)

	if price != nil && prefs.HasBudget() {
		p := float64(*price)
		lo, hi := float64(*prefs.BudgetMin), float64(*prefs.BudgetMax)
		switch {
		case p >= lo && p <= hi:
			b.Budget = w.BudgetInRange
		case p >= lo*w.NearLow && p <= hi*w.NearHigh:
			b.Budget = w.BudgetNear
		}
	}

	var keywords int
	for _, kw := range prefs.Keywords {
		if kw = strings.ToLower(kw); kw != "" && strings.Contains(text, kw) {
			keywords++
		}
	}
	b.Keyword = capped(keywords, w.KeywordPerMatch, w.KeywordCap)

	return b
}

func capped(matches int, per, limit float64) float64 {
	return min(float64(matches)*per, limit)
}
