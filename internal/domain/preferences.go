package domain

// Preferences is the structured intent parsed from one user query. It is not
// modified after parsing.
type Preferences struct {
	Styles    []string `json:"style"`
	Budget    string   `json:"budget,omitempty"`
	BudgetMin *int     `json:"budget_min,omitempty"`
	BudgetMax *int     `json:"budget_max,omitempty"`
	Brands    []string `json:"brand"`
	Keywords  []string `json:"keywords"`
}

// HasBudget reports whether both budget bounds are known.
func (p Preferences) HasBudget() bool {
	return p.BudgetMin != nil && p.BudgetMax != nil && *p.BudgetMin > 0 && *p.BudgetMax > 0
}

// Summary lists styles, budget and brands in that order, for report headers.
func (p Preferences) Summary() []string {
	var out []string
	out = append(out, p.Styles...)
	if p.Budget != "" {
		out = append(out, p.Budget)
	}
	out = append(out, p.Brands...)
	return out
}
