package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

type step int

const (
	stepDone step = iota
	stepRetry
	stepQuit
)

const (
	menuFirst = 1
	menuLast  = 5
)

var menuItems = []string{
	"1. 제품 가격 및 평점 비교 분석",
	"2. 사용자 취향 기반 제품 추천",
	"3. 제품 리뷰 기반 장단점 요약",
	"4. 취향 기반 제품 추천 (인터랙티브)",
	"5. 종료",
}

// Menu runs the interactive loop until the user quits, the input ends or
// ctx is canceled. A failing or panicking command does not end the loop.
func (a *App) Menu(ctx context.Context) error {
	a.out.Banner(a.title())
	for {
		next, err := a.menuStep(ctx)
		if err != nil {
			return a.menuExit(err)
		}
		switch next {
		case stepQuit:
			return a.menuExit(nil)
		case stepRetry:
			continue
		}

		again, err := a.prompt.Confirm(ctx, "\n다른 기능을 사용하시겠습니까? (y/n): ")
		if err != nil || !again {
			return a.menuExit(err)
		}
	}
}

func (a *App) menuExit(err error) error {
	a.out.Println("\n👋 프로그램을 종료합니다. 감사합니다!")
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) menuStep(ctx context.Context) (next step, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("panic: %v", r)
			a.log.WithStack().Error("menu command panicked", map[string]interface{}{"error": panicErr})
			telemetry.CaptureError(ctx, panicErr)
			a.out.Fail("예기치 않은 오류가 발생했습니다: %v", r)
			next, err = stepDone, nil
		}
	}()

	a.out.Println("\n메뉴:")
	for _, item := range menuItems {
		a.out.Println(item)
	}
	answer, err := a.prompt.Ask(ctx, "\n원하는 기능을 선택하세요 (1-5): ")
	if err != nil {
		return stepQuit, err
	}
	choice, convErr := strconv.Atoi(answer)
	if convErr != nil {
		a.out.Warn("숫자를 입력해주세요.")
		return stepRetry, nil
	}
	if choice < menuFirst || choice > menuLast {
		a.out.Warn("1부터 5 사이의 숫자를 입력해주세요.")
		return stepRetry, nil
	}

	switch choice {
	case 1:
		err = a.menuCompare(ctx)
	case 2:
		err = a.menuRecommend(ctx)
	case 3:
		err = a.menuReviews(ctx)
	case 4:
		err = a.menuTaste(ctx)
	case 5:
		return stepQuit, nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return stepQuit, err
		}
		a.out.Fail("오류가 발생했습니다: %v", err)
	}
	return stepDone, nil
}

func (a *App) menuCompare(ctx context.Context) error {
	a.out.Section("📊 제품 가격 및 평점 비교 분석")
	a.out.Println("비교할 제품을 입력하세요. (예: 나이키 에어포스 1와 아디다스 슈퍼스타)")
	query, err := a.prompt.Ask(ctx, "제품 입력: ")
	if err != nil {
		return err
	}
	if query == "" {
		a.out.Warn("제품명을 입력해주세요.")
		return nil
	}
	return a.Compare(ctx, query)
}

func (a *App) menuRecommend(ctx context.Context) error {
	a.out.Section("✨ 사용자 취향 기반 제품 추천")
	a.out.Println("원하는 스타일, 브랜드, 예산을 입력하세요. (예: 미니멀 스타일 30만원대 코트)")
	input, err := a.prompt.Ask(ctx, "취향 입력: ")
	if err != nil {
		return err
	}
	if input == "" {
		a.out.Warn("취향을 입력해주세요.")
		return nil
	}
	return a.Recommend(ctx, input)
}

func (a *App) menuReviews(ctx context.Context) error {
	a.out.Section("✅ 제품 리뷰 기반 장단점 요약")
	a.out.Println("리뷰를 분석할 제품명을 입력하세요. (예: 나이키 에어포스 1)")
	product, err := a.prompt.Ask(ctx, "제품명 입력: ")
	if err != nil {
		return err
	}
	if product == "" {
		a.out.Warn("제품명을 입력해주세요.")
		return nil
	}
	return a.Reviews(ctx, product)
}

func (a *App) menuTaste(ctx context.Context) error {
	req, err := a.AskTaste(ctx)
	if err != nil {
		return err
	}
	return a.Taste(ctx, req)
}
