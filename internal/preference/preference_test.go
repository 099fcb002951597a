package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

func TestParse_StyleAndDecadeBudget(t *testing.T) {
	prefs := Parse("미니멀리즘, 30만원대")

	assert.Equal(t, []string{"미니멀"}, prefs.Styles)
	assert.Equal(t, "30만원대", prefs.Budget)
	require.True(t, prefs.HasBudget())
	assert.Equal(t, 300000, *prefs.BudgetMin)
	assert.Equal(t, 390000, *prefs.BudgetMax)
	assert.Equal(t, []string{"미니멀리즘", "30만원대"}, prefs.Keywords)
	assert.Empty(t, prefs.Brands)
}

func TestParse_Budget(t *testing.T) {
	tests := []struct {
		name  string
		input string
		label string
		min   int
		max   int
	}{
		{"range", "20~30만원 코트", "20~30만원", 200000, 300000},
		{"range with spaces", "10 ~ 15 만원", "10~15만원", 100000, 150000},
		{"plain", "15만원 이하 니트", "15만원대", 150000, 240000},
		{"labelled", "예산: 5만원", "5만원대", 50000, 140000},
		{"spaced unit", "7 만 원대 셔츠", "7만원대", 70000, 160000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := Parse(tt.input)
			require.True(t, prefs.HasBudget())
			assert.Equal(t, tt.label, prefs.Budget)
			assert.Equal(t, tt.min, *prefs.BudgetMin)
			assert.Equal(t, tt.max, *prefs.BudgetMax)
		})
	}
}

func TestParse_NoBudget(t *testing.T) {
	prefs := Parse("오버핏 셔츠")

	assert.False(t, prefs.HasBudget())
	assert.Empty(t, prefs.Budget)
}

func TestParse_BrandsAndStyles(t *testing.T) {
	prefs := Parse("나이키 느낌의 힙한 캐주얼, 아더에러")

	assert.Equal(t, []string{"스트릿"}, prefs.Styles)
	assert.Equal(t, []string{"나이키", "아더에러"}, prefs.Brands)
	assert.Equal(t, []string{"나이키 느낌의 힙한 캐주얼", "아더에러"}, prefs.Keywords)
}

func TestParse_DropsShortKeywords(t *testing.T) {
	prefs := Parse("a, 코트, , 니")

	assert.Equal(t, []string{"코트"}, prefs.Keywords)
}

func TestParse_Empty(t *testing.T) {
	prefs := Parse("")

	assert.Equal(t, domain.Preferences{
		Styles:   []string{},
		Brands:   []string{},
		Keywords: []string{},
	}, prefs)
	assert.Empty(t, prefs.Summary())
}

func TestParse_Summary(t *testing.T) {
	prefs := Parse("빈티지 20~30만원 아크네")

	assert.Equal(t, []string{"빈티지", "20~30만원", "아크네"}, prefs.Summary())
}
