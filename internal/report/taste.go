package report

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

// TastePicks renders the ranked guided-taste picks as plain text.
func TastePicks(picks []domain.TastePick) string {
	if len(picks) == 0 {
		return "❌ 추천 제품을 찾을 수 없습니다."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n✨ 취향 기반 추천 제품 (관련성 점수 순)\n%s\n", heavyRule, heavyRule)
	for _, p := range picks {
		fmt.Fprintf(&b, "\n[%d] %s\n", p.Rank, p.Title)
		fmt.Fprintf(&b, "   ⭐ 추천 점수: %.0f/100\n", p.Score)
		fmt.Fprintf(&b, "   💡 추천 이유: %s\n", p.Reason)
		if p.Price != "" {
			fmt.Fprintf(&b, "   💰 가격: %s\n", p.Price)
		}
		if p.Image != "" {
			fmt.Fprintf(&b, "   🖼️  이미지: %s\n", p.Image)
		}
		fmt.Fprintf(&b, "   📝 요약: %s\n", p.Summary)
		fmt.Fprintf(&b, "   🔗 링크: %s\n", p.URL)
		b.WriteString(lightRule + "\n")
	}
	return b.String()
}
