package score

import (
	"sort"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

// Budget tolerance applied when filtering selections.
const (
	selectLow  = 0.7
	selectHigh = 1.3
)

// SortByScore orders candidates by descending Score. Ties keep discovery
// order.
func SortByScore(cands []domain.Candidate) []domain.Candidate {
	out := append([]domain.Candidate(nil), cands...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// SelectTop returns the topN best candidates. With a budget, candidates
// priced outside [0.7×min, 1.3×max] are dropped unless that drops all of
// them; candidates of unknown price are always kept.
func SelectTop(cands []domain.Candidate, prefs domain.Preferences, topN int) []domain.Candidate {
	sorted := SortByScore(cands)

	if prefs.HasBudget() {
		lo := float64(*prefs.BudgetMin) * selectLow
		hi := float64(*prefs.BudgetMax) * selectHigh

		filtered := make([]domain.Candidate, 0, len(sorted))
		for _, c := range sorted {
			p := c.Price.CurrentPrice
			if p == nil || (float64(*p) >= lo && float64(*p) <= hi) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			sorted = filtered
		}
	}

	if topN < 0 {
		topN = 0
	}
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}
