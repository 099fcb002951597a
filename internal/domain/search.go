package domain

// SearchDepth selects how thoroughly the search provider crawls for a query.
type SearchDepth string

const (
	SearchDepthBasic    SearchDepth = "basic"
	SearchDepthAdvanced SearchDepth = "advanced"
)

// RawResult is one search hit. It is read-only to the pipeline.
type RawResult struct {
	URL     string   `json:"url"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// SearchRequest describes a single call to the search provider.
type SearchRequest struct {
	Query          string
	Depth          SearchDepth
	MaxResults     int
	IncludeDomains []string
	ExcludeDomains []string
	IncludeImages  bool
}

// SearchResponse is the provider's answer to a SearchRequest.
type SearchResponse struct {
	Results []RawResult
	Images  []string
}
