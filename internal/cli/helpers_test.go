package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"

	"github.com/cloo-solutions/shopmate/internal/config"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/service"
)

// fakeSearcher answers every query with fn and records the queries.
type fakeSearcher struct {
	mu      sync.Mutex
	fn      func(req domain.SearchRequest) (domain.SearchResponse, error)
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	f.mu.Lock()
	f.queries = append(f.queries, req.Query)
	f.mu.Unlock()
	if f.fn == nil {
		return domain.SearchResponse{}, nil
	}
	return f.fn(req)
}

func (f *fakeSearcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func testConfig() *config.Config {
	return &config.Config{
		PreferredDomain:  "musinsa.com",
		PreferredName:    "무신사",
		PreferredAliases: []string{"musinsa", "무신사"},
		PreferredSites:   []string{"musinsa.com", "musinsa.co.kr", "www.musinsa.com"},
		PriceFloor:       5000,
		PriceCeiling:     5000000,
		ShippingCeiling:  50000,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

func newTestApp(t *testing.T, input string, searcher *fakeSearcher, model service.LLM) (*App, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var buf bytes.Buffer
	app := NewApp(
		testConfig(),
		logger.NewTest(t),
		NewPrompter(strings.NewReader(input), &buf),
		NewOutput(&buf, false),
		searcher,
		model,
	)
	return app, &buf
}
