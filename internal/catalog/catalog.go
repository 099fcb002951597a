// Package catalog holds the keyword tables used by the extractors, the
// preference parser and the review analyzer. Tables are exposed through
// functions returning fresh slices so callers cannot mutate shared state.
package catalog

// Category is a named group of synonyms. Order of categories is significant
// wherever the first match wins.
type Category struct {
	Name     string
	Synonyms []string
}

var styles = []Category{
	{Name: "미니멀", Synonyms: []string{"미니멀", "미니멀리즘", "심플", "깔끔", "모노톤"}},
	{Name: "스트릿", Synonyms: []string{"스트릿", "캐주얼", "힙", "유니크"}},
	{Name: "캠퍼스", Synonyms: []string{"캠퍼스", "학생", "편안", "컴포트"}},
	{Name: "오피스", Synonyms: []string{"오피스", "비즈니스", "정장", "포멀"}},
	{Name: "빈티지", Synonyms: []string{"빈티지", "레트로", "옛날"}},
	{Name: "러블리", Synonyms: []string{"러블리", "큐트", "여성스러운"}},
}

var brands = []string{
	"아르켓", "아크네", "나이키", "아디다스", "무신사", "쿠론", "스톤아일랜드",
	"커버낫", "디스이즈네버댓", "노스페이스", "패트아그", "아더에러",
}

var reviewTopics = []Category{
	{Name: "핏", Synonyms: []string{"핏", "착용", "입", "맞", "사이즈"}},
	{Name: "소재", Synonyms: []string{"소재", "재질", "원단", "천", "세탁"}},
	{Name: "배송/교환", Synonyms: []string{"배송", "교환", "반품", "포장", "발송"}},
	{Name: "내구성", Synonyms: []string{"내구", "튼튼", "오래", "빨리", "낡"}},
	{Name: "색상", Synonyms: []string{"색", "컬러", "어둡", "밝", "색감"}},
	{Name: "디자인", Synonyms: []string{"디자인", "스타일", "예쁘", "깔끔", "심플"}},
	{Name: "가격", Synonyms: []string{"가격", "비싸", "저렴", "할인", "가성비"}},
	{Name: "품질", Synonyms: []string{"품질", "퀄리티", "좋", "나쁜", "완성도"}},
	{Name: "사이즈", Synonyms: []string{"사이즈", "크", "작", "치수", "s/m/l"}},
	{Name: "착용감", Synonyms: []string{"착용감", "편안", "불편", "딱", "느슨"}},
}

var positiveWords = []string{
	"좋", "만족", "최고", "추천", "편안", "트렌디", "예쁘", "깔끔",
	"튼튼", "오래", "딱", "완벽", "훌륭", "빠르", "친절",
}

var negativeWords = []string{
	"아쉽", "불만", "별로", "작", "크", "안 좋", "부족", "어둡",
	"밝", "이상", "문제", "불편", "느리", "느슨", "빠지", "낡",
}

var specWords = []string{
	"소재", "재질", "사이즈", "컬러", "디자인", "기능", "특징",
	"material", "size", "color", "design", "feature",
}

// OtherTopic is the topic assigned to review sentences matching no topic.
const OtherTopic = "기타"

// Styles returns the style table in match order.
func Styles() []Category { return cloneCategories(styles) }

// StyleSynonyms returns the synonyms of a style, or nil for an unknown style.
func StyleSynonyms(style string) []string {
	for _, c := range styles {
		if c.Name == style {
			return append([]string(nil), c.Synonyms...)
		}
	}
	return nil
}

// Brands returns the brands recognised in free-text preferences.
func Brands() []string { return append([]string(nil), brands...) }

// ReviewTopics returns the review topic table in match order.
func ReviewTopics() []Category { return cloneCategories(reviewTopics) }

// PositiveWords returns word stems that signal a positive opinion.
func PositiveWords() []string { return append([]string(nil), positiveWords...) }

// NegativeWords returns word stems that signal a negative opinion.
func NegativeWords() []string { return append([]string(nil), negativeWords...) }

// SpecWords returns words that mark a product specification line.
func SpecWords() []string { return append([]string(nil), specWords...) }

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		out[i] = Category{Name: c.Name, Synonyms: append([]string(nil), c.Synonyms...)}
	}
	return out
}
