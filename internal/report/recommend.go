package report

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

const (
	// GenericReason is used when no specific callout applies.
	GenericReason = "사용자 취향 키워드와 관련된 인기 제품입니다"

	valueForMoneyRatio = 0.8
)

// Reason explains why a candidate fits the preferences: matched styles,
// matched brands, budget fit, value for money and discount.
func Reason(c domain.Candidate, prefs domain.Preferences) string {
	text := extract.Fold(c.Name + " " + c.Result.Content)
	var reasons []string

	var styles []string
	for _, style := range prefs.Styles {
		for _, syn := range catalog.StyleSynonyms(style) {
			if strings.Contains(text, strings.ToLower(syn)) {
				styles = append(styles, style)
				break
			}
		}
	}
	if len(styles) > 0 {
		reasons = append(reasons, strings.Join(styles, ", ")+" 스타일과 일치합니다")
	}

	var brands []string
	for _, brand := range prefs.Brands {
		if strings.Contains(text, extract.Fold(brand)) {
			brands = append(brands, brand)
		}
	}
	if len(brands) > 0 {
		reasons = append(reasons, strings.Join(brands, ", ")+" 브랜드의 느낌과 유사합니다")
	}

	if price := c.Price.FinalPrice; price != nil {
		if prefs.Budget != "" && prefs.HasBudget() && *price >= *prefs.BudgetMin && *price <= *prefs.BudgetMax {
			reasons = append(reasons, fmt.Sprintf("예산(%s)에 부합합니다", prefs.Budget))
		}
		if prefs.BudgetMax != nil && float64(*price) < float64(*prefs.BudgetMax)*valueForMoneyRatio {
			reasons = append(reasons, "가격 대비 가성비가 우수합니다")
		}
	}

	if rate := c.Price.DiscountRate; rate != nil && *rate > 0 {
		reasons = append(reasons, Percent(*rate)+" 할인 중입니다")
	}

	if len(reasons) == 0 {
		return GenericReason
	}
	return strings.Join(reasons, reasonSep)
}

// NoRecommendations is shown when nothing matched the input.
func NoRecommendations(input string) string {
	return fmt.Sprintf("⚠️ '%s'에 맞는 제품을 찾을 수 없습니다.", input)
}

// Recommendations renders the enumerated recommendation list.
func Recommendations(rec domain.Recommendation) string {
	if len(rec.Candidates) == 0 {
		return NoRecommendations(rec.Input)
	}

	label := strings.Join(rec.Preferences.Summary(), ", ")
	if label == "" {
		label = rec.Input
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### ✨ [%s] 기반 맞춤 추천 제품 %d가지\n\n", label, len(rec.Candidates))
	for i, c := range rec.Candidates {
		name := c.Name
		if name == "" {
			name = "제품명 없음"
		}
		reason := c.Reason
		if reason == "" {
			reason = Reason(c, rec.Preferences)
		}

		fmt.Fprintf(&b, "%d. **[%s]:** (%s)\n\n", i+1, name, PriceLabel(c.Price, NoPrice))
		fmt.Fprintf(&b, "    * **추천 이유:** %s\n\n", reason)
		if c.Result.URL != "" {
			fmt.Fprintf(&b, "    * 링크: %s\n\n", c.Result.URL)
		}
		if len(c.Result.Images) > 0 {
			img := c.Result.Images[0]
			fmt.Fprintf(&b, "    * 이미지: [%s](%s)\n\n", img, img)
		}
	}
	return b.String()
}
