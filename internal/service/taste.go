package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/rank"
	"github.com/cloo-solutions/shopmate/internal/report"
	"github.com/cloo-solutions/shopmate/internal/score"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

const (
	tasteResults     = 30
	tasteMaxProducts = 15
	tasteTopN        = 5
	tasteSummarySize = 100

	// KeywordMatchReason is the reason given when the heuristic scored a pick.
	KeywordMatchReason = "키워드 매칭 기반 추천"
	untitled           = "제목 없음"
)

// TasteRecommender ranks marketplace product pages against guided-menu
// keywords, using the LLM judge when one is configured.
type TasteRecommender struct {
	collector   *rank.Collector
	prices      *extract.PriceExtractor
	llm         LLM
	marketplace Marketplace
	log         logger.Logger
}

// NewTasteRecommender creates a TasteRecommender. model may be nil, in
// which case picks are scored by keyword matching only.
func NewTasteRecommender(
	collector *rank.Collector,
	prices *extract.PriceExtractor,
	model LLM,
	marketplace Marketplace,
	log logger.Logger,
) *TasteRecommender {
	return &TasteRecommender{
		collector:   collector,
		prices:      prices,
		llm:         model,
		marketplace: marketplace,
		log:         log,
	}
}

// Keywords returns the effective keywords of req: the menu keywords, merged
// with keywords the LLM extracts from the description, or the defaults.
func (t *TasteRecommender) Keywords(ctx context.Context, req domain.TasteRequest) []string {
	keywords := nonEmpty(req.Keywords)

	if t.llm != nil && strings.TrimSpace(req.NaturalQuery) != "" {
		extracted, err := t.llm.ExtractKeywords(ctx, req.NaturalQuery)
		if err != nil {
			t.log.Warn("keyword extraction failed", map[string]interface{}{"error": err})
		}
		keywords = mergeUnique(keywords, extracted)
	}

	if len(keywords) == 0 {
		return catalog.DefaultTasteKeywords()
	}
	return keywords
}

// Recommend returns up to five ranked picks. ErrNoResults is returned when no
// product page was found.
func (t *TasteRecommender) Recommend(ctx context.Context, req domain.TasteRequest) ([]domain.TastePick, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.taste", telemetry.SpanAttributes{
		Input: strings.TrimSpace(strings.Join(req.Keywords, ",") + " " + req.NaturalQuery),
	})
	defer span.End()

	keywords := t.Keywords(ctx, req)
	results := t.search(ctx, t.Queries(keywords, req.NaturalQuery))
	if len(results) == 0 {
		return nil, domain.ErrNoResults
	}

	picks := make([]domain.TastePick, 0, len(results))
	for _, r := range results {
		if ctx.Err() != nil {
			break
		}
		picks = append(picks, t.pick(ctx, r, keywords))
	}

	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Score > picks[j].Score })
	if len(picks) > tasteTopN {
		picks = picks[:tasteTopN]
	}
	for i := range picks {
		picks[i].Rank = i + 1
	}
	return picks, nil
}

// Queries phrases the product-page searches for keywords and an optional
// description.
func (t *TasteRecommender) Queries(keywords []string, natural string) []string {
	label := t.marketplace.label()
	pages := fmt.Sprintf("site:%s/products/", t.marketplace.Domain)
	natural = strings.TrimSpace(natural)
	joined := strings.Join(keywords, " ")

	var queries []string
	for _, q := range []string{natural, joined} {
		if q == "" {
			continue
		}
		queries = append(queries,
			fmt.Sprintf("%s %s 인기 상품", q, label),
			fmt.Sprintf("%s %s 상품", q, label),
			fmt.Sprintf("%s %s", q, pages),
			fmt.Sprintf("%s %s", label, q),
		)
	}
	if natural != "" && joined != "" {
		queries = append(queries, fmt.Sprintf("%s %s %s", natural, joined, label))
	}
	if len(queries) == 0 {
		queries = []string{label + " 인기 상품"}
	}
	return queries
}

// search runs every query restricted to the marketplace sites, retrying once
// unrestricted when a call fails, and keeps unique product pages.
func (t *TasteRecommender) search(ctx context.Context, queries []string) []domain.RawResult {
	var pages []domain.RawResult
	for _, q := range queries {
		if ctx.Err() != nil {
			break
		}
		req := domain.SearchRequest{
			Query:          q,
			Depth:          domain.SearchDepthAdvanced,
			MaxResults:     tasteResults,
			IncludeDomains: t.marketplace.sites(),
		}
		results, ok := t.collector.Search(ctx, req)
		if !ok {
			req.IncludeDomains = nil
			if results, ok = t.collector.Search(ctx, req); !ok {
				continue
			}
		}
		for _, r := range results {
			if t.isProductPage(r.URL) {
				pages = append(pages, r)
			}
		}
	}

	pages = rank.Dedupe(pages, rank.ByURL)
	if len(pages) > tasteMaxProducts {
		pages = pages[:tasteMaxProducts]
	}
	return pages
}

func (t *TasteRecommender) isProductPage(url string) bool {
	return t.marketplace.Domain != "" &&
		strings.Contains(strings.ToLower(url), strings.ToLower(t.marketplace.Domain)+"/products/")
}

func (t *TasteRecommender) pick(ctx context.Context, r domain.RawResult, keywords []string) domain.TastePick {
	p := domain.TastePick{
		Title:   r.Title,
		URL:     r.URL,
		Summary: extract.Truncate(r.Content, tasteSummarySize),
	}
	if p.Title == "" {
		p.Title = untitled
	}
	if p.Summary != r.Content {
		p.Summary += "..."
	}
	if price := t.prices.Extract(r.Content); price.FinalPrice != nil {
		p.Price = report.Won(*price.FinalPrice)
	}
	if len(r.Images) > 0 {
		p.Image = r.Images[0]
	}

	p.Score, p.Reason = t.judge(ctx, r, keywords)
	return p
}

func (t *TasteRecommender) judge(ctx context.Context, r domain.RawResult, keywords []string) (float64, string) {
	if t.llm != nil {
		j, err := t.llm.JudgeRelevance(ctx, keywords, r.Title, r.Content)
		if err == nil {
			return j.Score, j.Reason
		}
		t.log.Warn("relevance judge failed, using keyword match", map[string]interface{}{
			"url":   r.URL,
			"error": err,
		})
	}
	return score.KeywordMatch(r.Title, r.Content, keywords), KeywordMatchReason
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func mergeUnique(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, v := range append(append([]string(nil), base...), extra...) {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
