package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/rank"
	"github.com/cloo-solutions/shopmate/internal/review"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

const reviewResults = 20

// ReviewSummarizer collects marketplace reviews of a product and summarizes
// their pros and cons.
type ReviewSummarizer struct {
	collector   *rank.Collector
	analyzer    *review.Analyzer
	marketplace Marketplace
	log         logger.Logger
}

// NewReviewSummarizer creates a ReviewSummarizer.
func NewReviewSummarizer(collector *rank.Collector, marketplace Marketplace, log logger.Logger) *ReviewSummarizer {
	return &ReviewSummarizer{
		collector:   collector,
		analyzer:    review.NewAnalyzer(),
		marketplace: marketplace,
		log:         log,
	}
}

// Summarize returns the review summary of product. ErrNoResults is returned
// when no marketplace page carried review text.
func (s *ReviewSummarizer) Summarize(ctx context.Context, product string) (domain.ReviewSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.reviews", telemetry.SpanAttributes{Input: product})
	defer span.End()

	product = strings.TrimSpace(product)
	if product == "" {
		return domain.ReviewSummary{}, domain.ErrEmptyInput
	}

	reviews := s.collect(ctx, product)
	if len(reviews) == 0 {
		return domain.ReviewSummary{Product: product}, domain.ErrNoResults
	}
	s.log.Info("reviews collected", map[string]interface{}{
		"product": product,
		"count":   len(reviews),
	})

	return s.analyzer.Analyze(product, reviews), nil
}

// Queries returns the review search phrasings for product.
func (s *ReviewSummarizer) Queries(product string) []string {
	label := s.marketplace.label()
	site := "site:" + s.marketplace.Domain
	return []string{
		fmt.Sprintf("%s %s 후기", product, site),
		fmt.Sprintf("%s %s 리뷰", product, site),
		fmt.Sprintf("%s %s", product, site),
		fmt.Sprintf("%s %s 후기", site, product),
		fmt.Sprintf("%s %s 리뷰", site, product),
		fmt.Sprintf("%s %s 실제 후기 %s", product, label, site),
		fmt.Sprintf("%s %s 구매 후기 %s", product, label, site),
		fmt.Sprintf("%s %s 사용 후기 %s", product, label, site),
		fmt.Sprintf("%s %s 단점 위주 리뷰 %s", product, label, site),
		fmt.Sprintf("%s %s 장점 리뷰 %s", product, label, site),
		fmt.Sprintf("%s %s 리뷰 모음 %s", product, label, site),
		fmt.Sprintf("%s %s 리뷰 모음집 %s", product, label, site),
		fmt.Sprintf("%s %s 상품평 %s", product, label, site),
		fmt.Sprintf("%s %s 평가 %s", product, label, site),
		fmt.Sprintf("%s %s 후기", s.marketplace.Domain, product),
		fmt.Sprintf("%s %s 리뷰 %s", label, product, site),
	}
}

// collect keeps the non-empty content of marketplace pages, one per URL.
func (s *ReviewSummarizer) collect(ctx context.Context, product string) []string {
	var pages []domain.RawResult
	for _, q := range s.Queries(product) {
		if ctx.Err() != nil {
			break
		}
		results, ok := s.collector.Search(ctx, domain.SearchRequest{
			Query:      q,
			Depth:      domain.SearchDepthAdvanced,
			MaxResults: reviewResults,
		})
		if !ok {
			continue
		}
		for _, r := range results {
			if r.Content != "" && s.marketplace.ownsURL(r.URL) {
				pages = append(pages, r)
			}
		}
	}

	pages = rank.Dedupe(pages, func(r domain.RawResult) string { return strings.ToLower(r.URL) })
	reviews := make([]string, 0, len(pages))
	for _, p := range pages {
		reviews = append(reviews, p.Content)
	}
	return reviews
}
