package rank

import (
	"context"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

// MinPreferred is the number of preferred results below which fallback
// queries run.
const MinPreferred = 3

// Searcher is the web-search collaborator.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error)
}

// Plan describes the queries issued for one request.
type Plan struct {
	Primary []string
	// PrimaryLimit caps the primary queries issued; zero means all.
	PrimaryLimit      int
	PrimaryMaxResults int

	Fallback           []string
	FallbackLimit      int
	FallbackMaxResults int

	// Depth applies to every query; empty means advanced.
	Depth domain.SearchDepth
}

// Buckets are the results of a Plan split by marketplace.
type Buckets struct {
	Preferred []domain.RawResult
	General   []domain.RawResult
}

// Combined returns preferred results followed by general ones.
func (b Buckets) Combined() []domain.RawResult {
	out := make([]domain.RawResult, 0, len(b.Preferred)+len(b.General))
	out = append(out, b.Preferred...)
	return append(out, b.General...)
}

// Collector runs a Plan against a Searcher.
type Collector struct {
	searcher   Searcher
	classifier Classifier
	log        logger.Logger
}

// NewCollector creates a Collector.
func NewCollector(searcher Searcher, classifier Classifier, log logger.Logger) *Collector {
	return &Collector{searcher: searcher, classifier: classifier, log: log}
}

// Classifier returns the classifier used to bucket results.
func (c *Collector) Classifier() Classifier {
	return c.classifier
}

// Collect issues the primary queries in order and buckets every result. When
// fewer than MinPreferred preferred results were found it issues the
// fallback queries excluding the preferred domain and keeps only their
// general results. Failed queries are logged and skipped. Cancellation stops
// further queries and returns what was collected so far.
func (c *Collector) Collect(ctx context.Context, plan Plan) Buckets {
	var b Buckets
	depth := plan.Depth
	if depth == "" {
		depth = domain.SearchDepthAdvanced
	}

	for _, q := range limit(plan.Primary, plan.PrimaryLimit) {
		if ctx.Err() != nil {
			return b
		}
		results, ok := c.search(ctx, domain.SearchRequest{
			Query:      q,
			Depth:      depth,
			MaxResults: plan.PrimaryMaxResults,
		})
		if !ok {
			continue
		}
		preferred, general := Partition(results, c.classifier.IsPreferred)
		b.Preferred = append(b.Preferred, preferred...)
		b.General = append(b.General, general...)
	}

	if len(b.Preferred) >= MinPreferred {
		return b
	}

	var exclude []string
	if c.classifier.Domain != "" {
		exclude = []string{c.classifier.Domain}
	}
	for _, q := range limit(plan.Fallback, plan.FallbackLimit) {
		if ctx.Err() != nil {
			return b
		}
		results, ok := c.search(ctx, domain.SearchRequest{
			Query:          q,
			Depth:          depth,
			MaxResults:     plan.FallbackMaxResults,
			ExcludeDomains: exclude,
		})
		if !ok {
			continue
		}
		_, general := Partition(results, c.classifier.IsPreferred)
		b.General = append(b.General, general...)
	}
	return b
}

// Search runs a single request with the collector's failure handling.
func (c *Collector) Search(ctx context.Context, req domain.SearchRequest) ([]domain.RawResult, bool) {
	return c.search(ctx, req)
}

func (c *Collector) search(ctx context.Context, req domain.SearchRequest) ([]domain.RawResult, bool) {
	telemetry.AddBreadcrumb(ctx, "search", req.Query, map[string]interface{}{
		"max_results": req.MaxResults,
		"depth":       string(req.Depth),
	})

	resp, err := c.searcher.Search(ctx, req)
	if err != nil {
		c.log.Warn("search query failed", map[string]interface{}{
			"query": req.Query,
			"error": err,
		})
		return nil, false
	}
	c.log.Debug("search query done", map[string]interface{}{
		"query":   req.Query,
		"results": len(resp.Results),
	})
	return resp.Results, true
}

func limit(queries []string, n int) []string {
	if n > 0 && len(queries) > n {
		return queries[:n]
	}
	return queries
}
