package domain

// Shipping is an extracted shipping condition. CashOnDelivery means the fee is
// paid on arrival and Cost carries no meaning.
type Shipping struct {
	Cost           int  `json:"cost"`
	CashOnDelivery bool `json:"cash_on_delivery,omitempty"`
}

// PriceInfo holds best-effort price facts pulled out of free text. Absent
// fields are nil. When both prices are set OriginalPrice >= CurrentPrice.
type PriceInfo struct {
	CurrentPrice  *int      `json:"current_price,omitempty"`
	OriginalPrice *int      `json:"original_price,omitempty"`
	DiscountRate  *float64  `json:"discount_rate,omitempty"`
	Shipping      *Shipping `json:"shipping,omitempty"`
	FinalPrice    *int      `json:"final_price,omitempty"`
}

// IsEmpty reports whether nothing was extracted.
func (p PriceInfo) IsEmpty() bool {
	return p.CurrentPrice == nil && p.OriginalPrice == nil && p.DiscountRate == nil &&
		p.Shipping == nil && p.FinalPrice == nil
}

// RatingInfo holds a 0-5 rating and a review count, both optional.
type RatingInfo struct {
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
}

// Candidate is a search result under evaluation together with everything
// derived from it. It is not modified after scoring.
type Candidate struct {
	Result    RawResult  `json:"result"`
	Name      string     `json:"name"`
	Price     PriceInfo  `json:"price"`
	Rating    RatingInfo `json:"rating"`
	Preferred bool       `json:"preferred"`
	Score     float64    `json:"relevance_score"`
	Reason    string     `json:"reason,omitempty"`
}

// ValueBreakdown is the value score of a product with its components.
type ValueBreakdown struct {
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ProductComparison is one column of a comparison report.
type ProductComparison struct {
	Name        string         `json:"name"`
	Price       PriceInfo      `json:"price"`
	Rating      RatingInfo     `json:"rating"`
	Specs       string         `json:"specs"`
	Value       ValueBreakdown `json:"value_score"`
	SourceCount int            `json:"source_count"`
}

// Comparison is the result of comparing two or more named products. Products
// are ordered by value score, best first.
type Comparison struct {
	Products     []ProductComparison `json:"products"`
	Winner       string              `json:"winner"`
	WinnerReason string              `json:"winner_reason"`
}

// Recommendation is the result of a preference-based recommendation.
type Recommendation struct {
	Input       string      `json:"input"`
	Preferences Preferences `json:"preferences"`
	Candidates  []Candidate `json:"candidates"`
	Found       int         `json:"found"`
}

// ReviewPoint is one summarized opinion about a topic.
type ReviewPoint struct {
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

// ReviewSummary lists the pros and cons found in a product's reviews.
type ReviewSummary struct {
	Product     string        `json:"product"`
	ReviewCount int           `json:"review_count"`
	Pros        []ReviewPoint `json:"pros"`
	Cons        []ReviewPoint `json:"cons"`
}

// TasteRequest is the input of the guided taste recommendation.
type TasteRequest struct {
	Keywords     []string `json:"keywords"`
	NaturalQuery string   `json:"natural_query,omitempty"`
}

// TastePick is one ranked product of the guided taste recommendation.
type TastePick struct {
	Rank    int     `json:"rank"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Price   string  `json:"price,omitempty"`
	Image   string  `json:"image,omitempty"`
	Summary string  `json:"summary"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }
