package report

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

const highRating = 4.0

// WinnerReason explains why winner beat the runner-up.
func WinnerReason(winner, runnerUp domain.ProductComparison) string {
	reason := fmt.Sprintf("가성비 점수 %.1f점으로 우수함", winner.Value.Total)
	if winner.Price.FinalPrice != nil && runnerUp.Price.FinalPrice != nil &&
		*winner.Price.FinalPrice < *runnerUp.Price.FinalPrice {
		reason += ", 가격 경쟁력 있음"
	}
	if winner.Rating.Rating != nil && runnerUp.Rating.Rating != nil &&
		*winner.Rating.Rating > *runnerUp.Rating.Rating {
		reason += ", 높은 평점"
	}
	return reason
}

// Comparison renders a markdown table with one column per product and the
// final pick in the last column. Products are ordered best first, so the
// first column is the winner.
func Comparison(c domain.Comparison) string {
	if len(c.Products) < 2 {
		return "⚠️ 비교할 제품이 부족합니다."
	}

	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = cell(p.Name)
	}
	lowest := lowestPrice(c.Products)

	var b strings.Builder
	fmt.Fprintf(&b, "### 🛍️ %s 실시간 비교 분석\n\n", strings.Join(names, " vs "))

	row := func(label string, values []string, last string) {
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", label, strings.Join(values, " | "), last)
	}

	fmt.Fprintf(&b, "| 항목 | %s | 분석 및 추천 |\n", strings.Join(names, " | "))
	b.WriteString("| :--- |" + strings.Repeat(" :--- |", len(names)) + " :--- |\n")

	prices := make([]string, len(c.Products))
	ratings := make([]string, len(c.Products))
	specs := make([]string, len(c.Products))
	picks := make([]string, len(c.Products))
	for i, p := range c.Products {
		prices[i] = cell(PriceLabel(p.Price, NoInfo))
		ratings[i] = RatingLabel(p.Rating)
		specs[i] = cell(clip(p.Specs, specColumnSize))
		picks[i] = cell(pick(p, i == 0, lowest))
	}

	row("현재 가격", prices, "")
	row("평점", ratings, "")
	row("핵심 스펙", specs, "")
	row("Agent 추천", picks, cell(fmt.Sprintf("**최종 추천:** %s - %s", c.Winner, c.WinnerReason)))

	return b.String()
}

func pick(p domain.ProductComparison, winner bool, lowest *int) string {
	var reasons []string
	if winner {
		reasons = append(reasons, "🏆 최종 추천")
	}
	if p.Value.Total > 0 {
		reasons = append(reasons, fmt.Sprintf("가성비 점수: %.1f점", p.Value.Total))
	}
	if lowest != nil && p.Price.FinalPrice != nil && *p.Price.FinalPrice == *lowest {
		reasons = append(reasons, "저렴한 가격")
	}
	if p.Rating.Rating != nil && *p.Rating.Rating >= highRating {
		reasons = append(reasons, "높은 평점")
	}
	if len(reasons) == 0 {
		return "-"
	}
	return strings.Join(reasons, reasonSep)
}

func lowestPrice(products []domain.ProductComparison) *int {
	var lowest *int
	for _, p := range products {
		if p.Price.FinalPrice == nil {
			continue
		}
		if lowest == nil || *p.Price.FinalPrice < *lowest {
			lowest = p.Price.FinalPrice
		}
	}
	return lowest
}
