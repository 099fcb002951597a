package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
	"github.com/cloo-solutions/shopmate/internal/llm"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/rank"
)

// MockSearcher is a mock implementation of rank.Searcher. A Return value may
// be a func(domain.SearchRequest) domain.SearchResponse to answer per query.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	args := m.Called(ctx, req)
	if fn, ok := args.Get(0).(func(domain.SearchRequest) domain.SearchResponse); ok {
		return fn(req), args.Error(1)
	}
	return args.Get(0).(domain.SearchResponse), args.Error(1)
}

// MockLLM is a mock implementation of LLM.
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) ExtractKeywords(ctx context.Context, input string) ([]string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLLM) JudgeRelevance(ctx context.Context, keywords []string, title, content string) (llm.Judgement, error) {
	args := m.Called(ctx, keywords, title, content)
	return args.Get(0).(llm.Judgement), args.Error(1)
}

var musinsa = Marketplace{
	Domain: "musinsa.com",
	Label:  "무신사",
	Sites:  []string{"musinsa.com", "musinsa.co.kr", "www.musinsa.com"},
}

func newCollector(s rank.Searcher, log logger.Logger) *rank.Collector {
	return rank.NewCollector(s, rank.NewClassifier(musinsa.Domain, "musinsa", "무신사"), log)
}

func newPrices() *extract.PriceExtractor {
	return extract.NewPriceExtractor(extract.DefaultPriceBounds())
}

func newRatings() *extract.RatingExtractor {
	return extract.NewRatingExtractor("무신사", "musinsa")
}

func respond(results ...domain.RawResult) domain.SearchResponse {
	return domain.SearchResponse{Results: results}
}
