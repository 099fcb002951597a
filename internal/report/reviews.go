package report

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

const maxPoints = 5

// NoReviews is shown when no review text was collected for product.
func NoReviews(product string) string {
	return fmt.Sprintf("⚠️ '%s'에 대한 리뷰를 찾을 수 없습니다.", product)
}

// Reviews renders the pros and cons summary.
func Reviews(s domain.ReviewSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### ✅ %s 사용자 리뷰 기반 장단점 요약\n\n", s.Product)

	b.WriteString("#### 👍 주요 장점 (3-5가지)\n\n")
	writePoints(&b, s.Pros, "* 리뷰에서 장점을 찾을 수 없습니다.")

	b.WriteString("\n\n#### 👎 유의할 점 (3-5가지)\n\n")
	writePoints(&b, s.Cons, "* 리뷰에서 단점을 찾을 수 없습니다.")

	b.WriteString("\n")
	return b.String()
}

func writePoints(b *strings.Builder, points []domain.ReviewPoint, empty string) {
	if len(points) == 0 {
		b.WriteString(empty)
		return
	}
	lines := make([]string, 0, min(len(points), maxPoints))
	for _, p := range points[:min(len(points), maxPoints)] {
		lines = append(lines, fmt.Sprintf("* **[%s]:** %s", p.Topic, p.Summary))
	}
	b.WriteString(strings.Join(lines, "\n"))
}
