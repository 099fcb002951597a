package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleSynonyms(t *testing.T) {
	assert.Contains(t, StyleSynonyms("미니멀"), "심플")
	assert.Nil(t, StyleSynonyms("없는스타일"))
}

func TestTablesAreCopies(t *testing.T) {
	s := Styles()
	s[0].Synonyms[0] = "changed"
	assert.Equal(t, "미니멀", Styles()[0].Synonyms[0])

	b := Brands()
	b[0] = "changed"
	assert.Equal(t, "아르켓", Brands()[0])
}

func TestQuestionResolve(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		answer   string
		want     []string
	}{
		{"multiple", StyleQuestion(), "1, 3", []string{"미니멀리즘", "스트릿웨어"}},
		{"skip", StyleQuestion(), "0", nil},
		{"unknown keys ignored", CategoryQuestion(), "1,99,x", []string{"상의"}},
		{"empty", FeelQuestion(), "", nil},
		{"single choice", PriceQuestion(), " 2 ", []string{"보통"}},
		{"single choice ignores lists", PriceQuestion(), "1,2", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.Resolve(tt.answer))
		})
	}
}

func TestDefaultTasteKeywords(t *testing.T) {
	assert.Equal(t, []string{"무신사", "인기", "상품"}, DefaultTasteKeywords())
}
