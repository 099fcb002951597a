package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

func budgetPrefs() domain.Preferences {
	return domain.Preferences{
		Styles:    []string{"미니멀"},
		Budget:    "30만원대",
		BudgetMin: domain.IntPtr(300000),
		BudgetMax: domain.IntPtr(390000),
		Brands:    []string{"아르켓"},
		Keywords:  []string{},
	}
}

func TestReason(t *testing.T) {
	prefs := budgetPrefs()

	tests := []struct {
		name string
		cand domain.Candidate
		want string
	}{
		{
			name: "generic",
			cand: domain.Candidate{Name: "패딩", Result: domain.RawResult{Content: "겨울 신상"}},
			want: GenericReason,
		},
		{
			name: "style and brand",
			cand: domain.Candidate{Name: "아르켓 코트", Result: domain.RawResult{Content: "심플한 디자인"}},
			want: "미니멀 스타일과 일치합니다 | 아르켓 브랜드의 느낌과 유사합니다",
		},
		{
			name: "budget only",
			cand: domain.Candidate{Name: "코트", Price: domain.PriceInfo{FinalPrice: domain.IntPtr(350000)}},
			want: "예산(30만원대)에 부합합니다",
		},
		{
			name: "value for money and discount",
			cand: domain.Candidate{
				Name:  "코트",
				Price: domain.PriceInfo{FinalPrice: domain.IntPtr(200000), DiscountRate: domain.FloatPtr(30)},
			},
			want: "가격 대비 가성비가 우수합니다 | 30% 할인 중입니다",
		},
		{
			name: "budget upper edge",
			cand: domain.Candidate{Name: "코트", Price: domain.PriceInfo{FinalPrice: domain.IntPtr(390000)}},
			want: "예산(30만원대)에 부합합니다",
		},
		{
			name: "below budget",
			cand: domain.Candidate{Name: "코트", Price: domain.PriceInfo{FinalPrice: domain.IntPtr(250000)}},
			want: "가격 대비 가성비가 우수합니다",
		},
		{
			name: "over budget",
			cand: domain.Candidate{Name: "코트", Price: domain.PriceInfo{FinalPrice: domain.IntPtr(400000)}},
			want: GenericReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.cand, prefs))
		})
	}
}

func TestReason_CaseInsensitive(t *testing.T) {
	prefs := domain.Preferences{Brands: []string{"Arket"}}
	cand := domain.Candidate{Name: "ARKET wool coat"}

	assert.Equal(t, "Arket 브랜드의 느낌과 유사합니다", Reason(cand, prefs))
}

func TestRecommendations(t *testing.T) {
	rec := domain.Recommendation{
		Input:       "미니멀 30만원대 아르켓",
		Preferences: budgetPrefs(),
		Candidates: []domain.Candidate{
			{
				Name:   "아르켓 울 코트",
				Result: domain.RawResult{URL: "https://www.musinsa.com/products/1", Images: []string{"https://img/1.jpg"}},
				Price:  domain.PriceInfo{FinalPrice: domain.IntPtr(329000)},
				Reason: "미리 계산된 이유",
			},
			{
				Result: domain.RawResult{Content: "겨울 신상"},
			},
		},
		Found: 2,
	}

	out := Recommendations(rec)

	assert.True(t, strings.HasPrefix(out, "### ✨ [미니멀, 30만원대, 아르켓] 기반 맞춤 추천 제품 2가지\n\n"))
	assert.Contains(t, out, "1. **[아르켓 울 코트]:** (329,000원)\n\n")
	assert.Contains(t, out, "    * **추천 이유:** 미리 계산된 이유\n\n")
	assert.Contains(t, out, "    * 링크: https://www.musinsa.com/products/1\n\n")
	assert.Contains(t, out, "    * 이미지: [https://img/1.jpg](https://img/1.jpg)\n\n")
	assert.Contains(t, out, "2. **[제품명 없음]:** (가격 정보 없음)\n\n")
	assert.Contains(t, out, "    * **추천 이유:** "+GenericReason+"\n\n")
}

func TestRecommendations_FallbackLabelAndEmpty(t *testing.T) {
	rec := domain.Recommendation{
		Input:      "포근한 느낌",
		Candidates: []domain.Candidate{{Name: "니트"}},
	}
	assert.Contains(t, Recommendations(rec), "### ✨ [포근한 느낌] 기반 맞춤 추천 제품 1가지")

	rec.Candidates = nil
	assert.Equal(t, "⚠️ '포근한 느낌'에 맞는 제품을 찾을 수 없습니다.", Recommendations(rec))
}
