package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

func musinsa() Classifier {
	return NewClassifier("musinsa.com", "musinsa", "무신사")
}

func TestClassifier_IsPreferred(t *testing.T) {
	c := musinsa()

	tests := []struct {
		name   string
		result domain.RawResult
		want   bool
	}{
		{"domain in url", domain.RawResult{URL: "https://www.musinsa.com/products/123"}, true},
		{"alias in url", domain.RawResult{URL: "https://global.MUSINSA.net/item"}, true},
		{"korean name in content", domain.RawResult{URL: "https://blog.example.com", Content: "무신사 단독 할인"}, true},
		{"name in title", domain.RawResult{URL: "https://example.com", Title: "Musinsa Standard coat"}, true},
		{"unrelated", domain.RawResult{URL: "https://shop.example.com", Title: "코트", Content: "겨울 코트"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsPreferred(tt.result))
		})
	}
}

func TestClassifier_Mentions(t *testing.T) {
	c := musinsa()

	assert.True(t, c.Mentions("site: MUSINSA.COM"))
	assert.False(t, c.Mentions("29cm 코트"))
	assert.False(t, Classifier{}.Mentions("anything"))
}

func TestPartition_Stable(t *testing.T) {
	c := musinsa()
	results := []domain.RawResult{
		{URL: "https://a.example.com"},
		{URL: "https://musinsa.com/1"},
		{URL: "https://b.example.com"},
		{URL: "https://musinsa.com/2"},
		{URL: "https://c.example.com"},
		{URL: "https://musinsa.com/3"},
	}

	preferred, general := Partition(results, c.IsPreferred)

	assert.Equal(t, []domain.RawResult{results[1], results[3], results[5]}, preferred)
	assert.Equal(t, []domain.RawResult{results[0], results[2], results[4]}, general)

	combined := Buckets{Preferred: preferred, General: general}.Combined()
	assert.Equal(t, append(append([]domain.RawResult{}, preferred...), general...), combined)
}

func TestPartition_Empty(t *testing.T) {
	preferred, general := Partition(nil, musinsa().IsPreferred)

	assert.Empty(t, preferred)
	assert.Empty(t, general)
	assert.Empty(t, Buckets{}.Combined())
}

func TestDedupe(t *testing.T) {
	results := []domain.RawResult{
		{URL: "https://musinsa.com/1", Title: "first"},
		{URL: "", Title: "no url"},
		{URL: "https://a.example.com", Title: "a"},
		{URL: "https://musinsa.com/1", Title: "second"},
	}

	got := Dedupe(results, ByURL)

	assert.Equal(t, []domain.RawResult{results[0], results[2]}, got)
}

func TestDedupe_CustomKey(t *testing.T) {
	got := Dedupe([]string{"코트", "셔츠", "코트", ""}, func(s string) string { return s })

	assert.Equal(t, []string{"코트", "셔츠"}, got)
}
