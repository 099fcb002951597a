package catalog

import "strings"

// Option is one numbered choice of the guided taste menu. An empty Keyword
// means the choice selects nothing (skip or "all").
type Option struct {
	Key     string
	Label   string
	Keyword string
}

// Question is one step of the guided taste menu.
type Question struct {
	Title    string
	Hint     string
	Multiple bool
	Options  []Option
}

var categoryQuestion = Question{
	Title:    "원하는 옷 카테고리를 선택하세요 (복수 선택 가능)",
	Hint:     "선택 (번호를 쉼표로 구분, 예: 1,3,5 또는 0)",
	Multiple: true,
	Options: []Option{
		{"1", "상의", "상의"},
		{"2", "하의", "하의"},
		{"3", "바지", "바지"},
		{"4", "아우터", "아우터"},
		{"5", "신발", "신발"},
		{"6", "악세서리", "악세서리"},
		{"7", "가방", "가방"},
		{"8", "모자", "모자"},
		{"0", "전체", ""},
	},
}

var styleQuestion = Question{
	Title:    "선호하는 스타일을 선택하세요 (복수 선택 가능)",
	Hint:     "선택 (번호를 쉼표로 구분, 예: 1,3,5)",
	Multiple: true,
	Options: []Option{
		{"1", "미니멀", "미니멀리즘"},
		{"2", "캠퍼스룩", "캠퍼스"},
		{"3", "스트릿", "스트릿웨어"},
		{"4", "오피스", "비즈니스"},
		{"5", "캐주얼", "캐주얼"},
		{"6", "데이트", "데이트"},
		{"7", "댄디", "댄디"},
		{"8", "아메카지", "아메카지"},
		{"9", "빈티지", "빈티지"},
		{"10", "모던", "모던"},
		{"11", "클래식", "클래식"},
		{"12", "시크", "시크"},
		{"13", "페미닌", "페미닌"},
		{"14", "유니섹스", "유니섹스"},
		{"0", "건너뛰기", ""},
	},
}

var feelQuestion = Question{
	Title:    "원하는 느낌을 선택하세요 (선택사항, 복수 선택 가능)",
	Hint:     "선택 (번호를 쉼표로 구분, 예: 1,3 또는 0)",
	Multiple: true,
	Options: []Option{
		{"1", "편안한", "편안한"},
		{"2", "따뜻한", "따뜻한"},
		{"3", "시원한", "시원한"},
		{"4", "가벼운", "가벼운"},
		{"5", "부드러운", "부드러운"},
		{"0", "건너뛰기", ""},
	},
}

var priceQuestion = Question{
	Title:    "가격대를 선택하세요 (선택사항)",
	Hint:     "선택 (번호 하나만, 예: 2 또는 0)",
	Multiple: false,
	Options: []Option{
		{"1", "5만원 이하", "저렴"},
		{"2", "5만원 ~ 10만원", "보통"},
		{"3", "10만원 ~ 20만원", "중간"},
		{"4", "20만원 이상", "프리미엄"},
		{"0", "가격 무관", ""},
	},
}

var defaultTasteKeywords = []string{"무신사", "인기", "상품"}

// CategoryQuestion returns the clothing category step.
func CategoryQuestion() Question { return cloneQuestion(categoryQuestion) }

// StyleQuestion returns the style step.
func StyleQuestion() Question { return cloneQuestion(styleQuestion) }

// FeelQuestion returns the comfort/feel step.
func FeelQuestion() Question { return cloneQuestion(feelQuestion) }

// PriceQuestion returns the single-choice price range step.
func PriceQuestion() Question { return cloneQuestion(priceQuestion) }

// DefaultTasteKeywords returns the fallback keywords of the guided menu.
func DefaultTasteKeywords() []string { return append([]string(nil), defaultTasteKeywords...) }

// Resolve maps a comma separated answer such as "1, 3" to option keywords,
// ignoring unknown keys and options without a keyword. Single-choice
// questions only look at the whole answer.
func (q Question) Resolve(answer string) []string {
	var keys []string
	if q.Multiple {
		keys = splitComma(answer)
	} else if answer = strings.TrimSpace(answer); answer != "" {
		keys = []string{answer}
	}

	var out []string
	for _, key := range keys {
		for _, opt := range q.Options {
			if opt.Key == key && opt.Keyword != "" {
				out = append(out, opt.Keyword)
			}
		}
	}
	return out
}

func cloneQuestion(q Question) Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
