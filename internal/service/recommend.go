package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/preference"
	"github.com/cloo-solutions/shopmate/internal/rank"
	"github.com/cloo-solutions/shopmate/internal/report"
	"github.com/cloo-solutions/shopmate/internal/score"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

const (
	recommendTopN            = 3
	recommendPrimaryLimit    = 8
	recommendPrimaryResults  = 5
	recommendFallbackLimit   = 3
	recommendFallbackResults = 3
	recommendKeywordQueries  = 3
	candidateContentSize     = 500
)

// Recommender suggests products matching free-text preferences.
type Recommender struct {
	collector   *rank.Collector
	prices      *extract.PriceExtractor
	ratings     *extract.RatingExtractor
	scorer      *score.RelevanceScorer
	marketplace Marketplace
	log         logger.Logger
}

// NewRecommender creates a Recommender scoring with the default weights.
func NewRecommender(
	collector *rank.Collector,
	prices *extract.PriceExtractor,
	ratings *extract.RatingExtractor,
	marketplace Marketplace,
	log logger.Logger,
) *Recommender {
	return &Recommender{
		collector:   collector,
		prices:      prices,
		ratings:     ratings,
		scorer:      score.NewRelevanceScorer(score.DefaultWeights()),
		marketplace: marketplace,
		log:         log,
	}
}

// Recommend parses input into preferences and returns the best matching
// candidates. ErrNoResults is returned when the searches yield no product.
func (r *Recommender) Recommend(ctx context.Context, input string) (domain.Recommendation, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.recommend", telemetry.SpanAttributes{Input: input})
	defer span.End()

	if strings.TrimSpace(input) == "" {
		return domain.Recommendation{}, domain.ErrEmptyInput
	}

	prefs := preference.Parse(input)
	r.log.Info("parsed preferences", map[string]interface{}{
		"styles": prefs.Styles,
		"budget": prefs.Budget,
		"brands": prefs.Brands,
	})

	buckets := r.collector.Collect(ctx, r.plan(prefs))
	cands := rank.Dedupe(r.candidates(buckets, prefs), func(c domain.Candidate) string { return c.Name })
	if len(cands) == 0 {
		return domain.Recommendation{Input: input, Preferences: prefs}, domain.ErrNoResults
	}
	r.log.Debug("candidates scored", map[string]interface{}{"count": len(cands)})

	top := score.SelectTop(cands, prefs, recommendTopN)
	for i := range top {
		top[i].Reason = report.Reason(top[i], prefs)
	}

	return domain.Recommendation{
		Input:       input,
		Preferences: prefs,
		Candidates:  top,
		Found:       len(cands),
	}, nil
}

func (r *Recommender) plan(prefs domain.Preferences) rank.Plan {
	label := r.marketplace.label()
	site := "site:" + r.marketplace.Domain

	var primary []string
	for _, style := range prefs.Styles {
		primary = append(primary,
			fmt.Sprintf("%s 스타일 %s 인기 제품", style, label),
			fmt.Sprintf("%s %s 추천 제품", style, label),
			fmt.Sprintf("%s %s 제품", style, label),
			fmt.Sprintf("%s %s", style, site),
		)
	}
	for _, brand := range prefs.Brands {
		primary = append(primary,
			fmt.Sprintf("%s %s 가성비 제품", brand, label),
			fmt.Sprintf("%s %s 비슷한 제품", brand, label),
			fmt.Sprintf("%s %s 추천", brand, label),
		)
	}
	for _, kw := range prefs.Keywords[:min(len(prefs.Keywords), recommendKeywordQueries)] {
		primary = append(primary,
			fmt.Sprintf("%s %s 제품", kw, label),
			fmt.Sprintf("%s %s", kw, site),
		)
	}
	if prefs.Budget != "" {
		primary = append(primary,
			fmt.Sprintf("%s %s 추천 제품", prefs.Budget, label),
			fmt.Sprintf("%s %s 인기 제품", prefs.Budget, label),
		)
	}
	if len(primary) == 0 {
		primary = []string{
			fmt.Sprintf("%s 인기 제품", label),
			fmt.Sprintf("%s 인기", site),
		}
	}

	fallback := make([]string, 0, len(prefs.Styles))
	for _, style := range prefs.Styles {
		fallback = append(fallback, fmt.Sprintf("%s 스타일 인기 제품", style))
	}

	return rank.Plan{
		Primary:            primary,
		PrimaryLimit:       recommendPrimaryLimit,
		PrimaryMaxResults:  recommendPrimaryResults,
		Fallback:           fallback,
		FallbackLimit:      recommendFallbackLimit,
		FallbackMaxResults: recommendFallbackResults,
		Depth:              domain.SearchDepthAdvanced,
	}
}

// candidates turns results into scored candidates, preferred bucket first.
// Results without a usable name are dropped.
func (r *Recommender) candidates(b rank.Buckets, prefs domain.Preferences) []domain.Candidate {
	classifier := r.collector.Classifier()
	var out []domain.Candidate
	for _, res := range b.Combined() {
		if res.Title == "" && res.Content == "" {
			continue
		}
		name := extract.ProductName(res)
		if name == "" {
			continue
		}

		text := res.Content + " " + res.Title
		price := r.prices.Extract(text)
		preferred := classifier.IsPreferred(res) || classifier.Mentions(name)
		relevance := r.scorer.Score(name+" "+res.Content, preferred, price.CurrentPrice, prefs)
		res.Content = extract.Truncate(res.Content, candidateContentSize)

		out = append(out, domain.Candidate{
			Result:    res,
			Name:      name,
			Price:     price,
			Rating:    r.ratings.Extract(text),
			Preferred: preferred,
			Score:     relevance,
		})
	}
	return out
}
