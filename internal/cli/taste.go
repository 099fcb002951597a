package cli

import (
	"context"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
)

// AskTaste walks the user through the guided taste questions.
func (a *App) AskTaste(ctx context.Context) (domain.TasteRequest, error) {
	a.out.Section("🎯 취향 기반 제품 추천")

	var req domain.TasteRequest
	steps := []catalog.Question{catalog.CategoryQuestion(), catalog.StyleQuestion()}
	for i, q := range steps {
		keywords, err := a.ask(ctx, i+1, q)
		if err != nil {
			return req, err
		}
		req.Keywords = append(req.Keywords, keywords...)
	}

	a.out.Println("\n[3] 선호하는 브랜드가 있으면 입력하세요 (선택사항)")
	brands, err := a.prompt.Ask(ctx, "브랜드 (쉼표로 구분, 없으면 Enter): ")
	if err != nil {
		return req, err
	}
	req.Keywords = append(req.Keywords, splitList(brands)...)

	for i, q := range []catalog.Question{catalog.FeelQuestion(), catalog.PriceQuestion()} {
		keywords, err := a.ask(ctx, i+4, q)
		if err != nil {
			return req, err
		}
		req.Keywords = append(req.Keywords, keywords...)
	}

	if len(req.Keywords) > 0 {
		a.out.Printf("\n📌 선택된 키워드: %s\n", strings.Join(req.Keywords, ", "))
	} else {
		a.out.Printf("\n📌 선택된 키워드: 없음 (기본 키워드 사용)\n")
	}

	natural, err := a.prompt.Ask(ctx, "\n💬 추가로 원하는 스타일이나 설명이 있으면 자연어로 입력하세요 (없으면 Enter): ")
	if err != nil {
		return req, err
	}
	req.NaturalQuery = natural
	return req, nil
}

func (a *App) ask(ctx context.Context, n int, q catalog.Question) ([]string, error) {
	a.out.Printf("\n[%d] %s\n", n, q.Title)
	for _, opt := range q.Options {
		a.out.Printf("  %s. %s\n", opt.Key, opt.Label)
	}
	answer, err := a.prompt.Ask(ctx, q.Hint+": ")
	if err != nil {
		return nil, err
	}
	return q.Resolve(answer), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
