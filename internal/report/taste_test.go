package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

func TestTastePicks(t *testing.T) {
	picks := []domain.TastePick{
		{
			Rank:    1,
			Title:   "미니멀 니트",
			URL:     "https://www.musinsa.com/products/10",
			Price:   "39,000원",
			Image:   "https://img/10.jpg",
			Summary: "부드러운 니트...",
			Score:   85,
			Reason:  "미니멀 스타일에 부합",
		},
		{
			Rank:    2,
			Title:   "캠퍼스 후드",
			URL:     "https://www.musinsa.com/products/11",
			Summary: "편안한 후드",
			Score:   66.7,
			Reason:  "키워드 매칭 기반 추천",
		},
	}

	out := TastePicks(picks)

	assert.Contains(t, out, "✨ 취향 기반 추천 제품 (관련성 점수 순)")
	assert.Contains(t, out, "[1] 미니멀 니트\n   ⭐ 추천 점수: 85/100\n   💡 추천 이유: 미니멀 스타일에 부합\n")
	assert.Contains(t, out, "   💰 가격: 39,000원\n   🖼️  이미지: https://img/10.jpg\n")
	assert.Contains(t, out, "[2] 캠퍼스 후드\n   ⭐ 추천 점수: 67/100\n   💡 추천 이유: 키워드 매칭 기반 추천\n   📝 요약: 편안한 후드\n")
	assert.Contains(t, out, "   🔗 링크: https://www.musinsa.com/products/11\n")
}

func TestTastePicks_Empty(t *testing.T) {
	assert.Equal(t, "❌ 추천 제품을 찾을 수 없습니다.", TastePicks(nil))
}
