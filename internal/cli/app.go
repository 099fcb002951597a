// Package cli implements the shopmate command line: the interactive menu and
// one subcommand per pipeline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cloo-solutions/shopmate/internal/config"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
	"github.com/cloo-solutions/shopmate/internal/llm"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/rank"
	"github.com/cloo-solutions/shopmate/internal/report"
	"github.com/cloo-solutions/shopmate/internal/search"
	"github.com/cloo-solutions/shopmate/internal/service"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

// App holds one session's collaborators.
type App struct {
	cfg    *config.Config
	log    logger.Logger
	prompt *Prompter
	out    *Output

	collector   *rank.Collector
	prices      *extract.PriceExtractor
	marketplace service.Marketplace

	comparer    *service.Comparer
	recommender *service.Recommender
	reviews     *service.ReviewSummarizer
	taste       *service.TasteRecommender

	model service.LLM
	// askLLMKey is set when the OpenAI key may still be asked for once.
	askLLMKey bool
	newLLM    func(apiKey string) service.LLM
}

// NewApp wires the pipelines over searcher. model may be nil.
func NewApp(
	cfg *config.Config,
	log logger.Logger,
	prompt *Prompter,
	out *Output,
	searcher rank.Searcher,
	model service.LLM,
) *App {
	classifier := rank.NewClassifier(cfg.PreferredDomain, cfg.PreferredAliases...)
	collector := rank.NewCollector(searcher, classifier, log)
	prices := extract.NewPriceExtractor(cfg.PriceBounds())
	ratings := extract.NewRatingExtractor(append([]string{cfg.PreferredName}, cfg.PreferredAliases...)...)
	marketplace := service.Marketplace{
		Domain: cfg.PreferredDomain,
		Label:  cfg.PreferredName,
		Sites:  cfg.PreferredSites,
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		prompt:      prompt,
		out:         out,
		collector:   collector,
		prices:      prices,
		marketplace: marketplace,
		comparer:    service.NewComparer(collector, prices, ratings, marketplace, log),
		recommender: service.NewRecommender(collector, prices, ratings, marketplace, log),
		reviews:     service.NewReviewSummarizer(collector, marketplace, log),
		newLLM: func(apiKey string) service.LLM {
			return llm.NewClient(llm.Config{APIKey: apiKey, BaseURL: cfg.OpenAIBaseURL, Model: cfg.OpenAIModel})
		},
	}
	a.setLLM(model)
	return a
}

// Build creates an App backed by the Tavily and OpenAI clients. A missing
// Tavily key is asked for; a blank answer fails with ErrMissingCredential.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger, prompt *Prompter, out *Output) (*App, error) {
	if !cfg.HasTavily() {
		key, err := prompt.Ask(ctx, "TAVILY_API_KEY를 입력하세요 (또는 Enter로 종료): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if key == "" {
			return nil, domain.ErrMissingCredential.WithCause(errors.New("TAVILY_API_KEY is required"))
		}
		cfg.TavilyAPIKey = key
	}

	searcher := search.NewClient(cfg.TavilyAPIKey, search.Options{
		BaseURL: cfg.TavilyBaseURL,
		Timeout: cfg.HTTPTimeout,
		Rate:    cfg.SearchRate,
		Burst:   cfg.SearchBurst,
	})

	a := NewApp(cfg, log, prompt, out, searcher, nil)
	if cfg.HasOpenAI() {
		a.setLLM(a.newLLM(cfg.OpenAIAPIKey))
	} else {
		a.askLLMKey = true
	}
	return a, nil
}

func (a *App) setLLM(model service.LLM) {
	a.model = model
	a.taste = service.NewTasteRecommender(a.collector, a.prices, model, a.marketplace, a.log)
}

// ensureLLM asks for the OpenAI key the first time the taste pipeline runs
// without one. A blank answer keeps keyword matching.
func (a *App) ensureLLM(ctx context.Context) error {
	if a.model != nil || !a.askLLMKey {
		return nil
	}
	a.askLLMKey = false

	key, err := a.prompt.Ask(ctx, "OPENAI_API_KEY를 입력하세요 (또는 Enter로 건너뛰기): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if key == "" {
		a.out.Warn("OpenAI 키가 없어 키워드 매칭으로 추천합니다.")
		return nil
	}
	a.cfg.OpenAIAPIKey = key
	a.setLLM(a.newLLM(key))
	return nil
}

// run executes one command under a request ID and a telemetry transaction.
func (a *App) run(ctx context.Context, command, input string, fn func(ctx context.Context) error) error {
	requestID := uuid.NewString()
	log := a.log.With(map[string]interface{}{
		"request_id": requestID,
		"command":    command,
	})

	ctx, span := telemetry.StartTransaction(ctx, "cli."+command, telemetry.SpanAttributes{
		RequestID: requestID,
		Command:   command,
		Input:     input,
	})
	defer span.End()

	start := time.Now()
	log.Debug("command started", map[string]interface{}{"input": input})
	if err := fn(ctx); err != nil {
		span.SetError(err)
		log.WithError(err).Warn("command failed", map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
	log.Info("command completed", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// Compare compares the products named in query.
func (a *App) Compare(ctx context.Context, query string) error {
	return a.run(ctx, "compare", query, func(ctx context.Context) error {
		a.out.Printf("\n🔍 '%s' 비교 분석 중...\n", query)
		result, err := a.comparer.Compare(ctx, query)
		if err != nil && !errors.Is(err, domain.ErrTooFewProducts) {
			return err
		}
		return a.out.Result(result, report.Comparison(result))
	})
}

// Recommend recommends products for a free-form taste description.
func (a *App) Recommend(ctx context.Context, input string) error {
	return a.run(ctx, "recommend", input, func(ctx context.Context) error {
		a.out.Printf("\n🔍 '%s' 취향 분석 및 제품 검색 중...\n", input)
		result, err := a.recommender.Recommend(ctx, input)
		if errors.Is(err, domain.ErrNoResults) {
			return a.out.Result(result, report.NoRecommendations(input))
		}
		if err != nil {
			return err
		}
		return a.out.Result(result, report.Recommendations(result))
	})
}

// Reviews summarizes the pros and cons of product.
func (a *App) Reviews(ctx context.Context, product string) error {
	return a.run(ctx, "reviews", product, func(ctx context.Context) error {
		a.out.Printf("\n🔍 '%s' 리뷰 수집 및 분석 중...\n", product)
		result, err := a.reviews.Summarize(ctx, product)
		if errors.Is(err, domain.ErrNoResults) {
			return a.out.Result(result, report.NoReviews(product))
		}
		if err != nil {
			return err
		}
		return a.out.Result(result, report.Reviews(result))
	})
}

// Taste runs the guided taste recommendation for req.
func (a *App) Taste(ctx context.Context, req domain.TasteRequest) error {
	input := strings.TrimSpace(strings.Join(req.Keywords, ", ") + " " + req.NaturalQuery)
	return a.run(ctx, "taste", input, func(ctx context.Context) error {
		if err := a.ensureLLM(ctx); err != nil {
			return err
		}
		a.out.Printf("\n🔍 %s 상품 검색 중...\n", a.marketplace.Label)
		picks, err := a.taste.Recommend(ctx, req)
		if errors.Is(err, domain.ErrNoResults) {
			return a.out.Result([]domain.TastePick{}, report.TastePicks(nil))
		}
		if err != nil {
			return err
		}
		return a.out.Result(picks, report.TastePicks(picks))
	})
}

func (a *App) title() string {
	return fmt.Sprintf("🛍️  %s 쇼핑 도움 에이전트", a.marketplace.Label)
}
