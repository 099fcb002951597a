package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/rank"
	"github.com/cloo-solutions/shopmate/internal/report"
	"github.com/cloo-solutions/shopmate/internal/score"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

const (
	comparePrimaryResults  = 5
	compareFallbackResults = 3
)

var nameSeparator = regexp.MustCompile(`(?:와|과)\s+|\s+(?i:vs\.?)\s+|,`)

// SplitProductNames splits "A 코트와 B 코트" style queries into product
// names. Separators are 와/과 followed by a space, vs, and commas.
func SplitProductNames(query string) []string {
	var names []string
	for _, part := range nameSeparator.Split(extract.Normalize(query), -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Comparer compares named products by price, rating and value score.
type Comparer struct {
	collector   *rank.Collector
	prices      *extract.PriceExtractor
	ratings     *extract.RatingExtractor
	weights     score.ValueWeights
	marketplace Marketplace
	log         logger.Logger
}

// NewComparer creates a Comparer.
func NewComparer(
	collector *rank.Collector,
	prices *extract.PriceExtractor,
	ratings *extract.RatingExtractor,
	marketplace Marketplace,
	log logger.Logger,
) *Comparer {
	return &Comparer{
		collector:   collector,
		prices:      prices,
		ratings:     ratings,
		weights:     score.DefaultValueWeights(),
		marketplace: marketplace,
		log:         log,
	}
}

// Compare searches every product named in query and ranks them by value
// score, best first.
func (c *Comparer) Compare(ctx context.Context, query string) (domain.Comparison, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.compare", telemetry.SpanAttributes{Input: query})
	defer span.End()

	if strings.TrimSpace(query) == "" {
		return domain.Comparison{}, domain.ErrEmptyInput
	}
	names := SplitProductNames(query)
	if len(names) < 2 {
		return domain.Comparison{}, domain.ErrTooFewProducts
	}

	products := make([]domain.ProductComparison, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return domain.Comparison{}, err
		}
		c.log.Info("searching product", map[string]interface{}{"product": name})
		products = append(products, c.product(ctx, name))
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Value.Total > products[j].Value.Total
	})

	return domain.Comparison{
		Products:     products,
		Winner:       products[0].Name,
		WinnerReason: report.WinnerReason(products[0], products[1]),
	}, nil
}

func (c *Comparer) plan(name string) rank.Plan {
	label := c.marketplace.label()
	return rank.Plan{
		Primary: []string{
			fmt.Sprintf("%s %s 최저가", name, label),
			fmt.Sprintf("%s %s 가격", name, label),
			fmt.Sprintf("%s %s 할인", name, label),
			fmt.Sprintf("%s %s 평점", name, label),
			fmt.Sprintf("%s %s 리뷰", name, label),
			fmt.Sprintf("%s %s 스펙", name, label),
			fmt.Sprintf("%s site:%s", name, c.marketplace.Domain),
		},
		PrimaryMaxResults: comparePrimaryResults,
		Fallback: []string{
			fmt.Sprintf("%s %s lowest price", name, englishLabel(c.marketplace.Domain)),
			fmt.Sprintf("%s online rating comparison", name),
			fmt.Sprintf("%s 할인 가격", name),
		},
		FallbackMaxResults: compareFallbackResults,
		Depth:              domain.SearchDepthAdvanced,
	}
}

func (c *Comparer) product(ctx context.Context, name string) domain.ProductComparison {
	buckets := c.collector.Collect(ctx, c.plan(name))

	// Marketplace text wins over the rest of the web when there is any.
	text := joinContent(buckets.Preferred)
	if strings.TrimSpace(text) == "" {
		text = joinContent(buckets.General)
	}

	results := buckets.Combined()
	price := c.prices.Extract(text)
	rating := c.ratings.Extract(text)

	return domain.ProductComparison{
		Name:        name,
		Price:       price,
		Rating:      rating,
		Specs:       extract.Specs(results),
		Value:       score.Value(price, rating, c.weights),
		SourceCount: len(results),
	}
}

func joinContent(results []domain.RawResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.Content)
	}
	return strings.Join(parts, " ")
}

// englishLabel turns musinsa.com into Musinsa for English phrasings.
func englishLabel(domainName string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(domainName, "www."), ".")
	if name == "" {
		return domainName
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}
