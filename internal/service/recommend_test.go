package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/logger"
)

func TestRecommender_Recommend(t *testing.T) {
	s := new(MockSearcher)
	s.On("Search", mock.Anything, mock.Anything).Return(respond(
		domain.RawResult{
			URL:     "https://www.musinsa.com/products/1",
			Title:   "미니멀 울 코트",
			Content: "심플한 디자인 판매가 320,000원",
			Images:  []string{"https://image.musinsa.com/1.jpg"},
		},
		domain.RawResult{
			URL:     "https://www.musinsa.com/products/2",
			Title:   "빈티지 자켓",
			Content: "레트로 판매가 900,000원",
		},
		domain.RawResult{
			URL:     "https://www.musinsa.com/products/1?utm=dup",
			Title:   "미니멀 울 코트",
			Content: "중복 결과",
		},
		domain.RawResult{
			URL:     "https://shop.example.com/knit",
			Title:   "심플 니트",
			Content: "깔끔한 니트 가격: 250,000원",
		},
		domain.RawResult{URL: "https://shop.example.com/empty"},
	), nil)

	r := NewRecommender(newCollector(s, logger.NewTest(t)), newPrices(), newRatings(), musinsa, logger.NewTest(t))
	rec, err := r.Recommend(context.Background(), "미니멀 30만원대")
	require.NoError(t, err)

	assert.Equal(t, "미니멀 30만원대", rec.Input)
	assert.Equal(t, []string{"미니멀"}, rec.Preferences.Styles)
	assert.Equal(t, "30만원대", rec.Preferences.Budget)
	assert.Equal(t, 3, rec.Found)

	// The jacket is far over budget and filtered out of the selection.
	require.Len(t, rec.Candidates, 2)
	coat, knit := rec.Candidates[0], rec.Candidates[1]

	assert.Equal(t, "미니멀 울 코트", coat.Name)
	assert.Equal(t, 49.0, coat.Score)
	assert.True(t, coat.Preferred)
	assert.Equal(t, 320000, *coat.Price.CurrentPrice)
	assert.Equal(t, "미니멀 스타일과 일치합니다 | 예산(30만원대)에 부합합니다", coat.Reason)

	assert.Equal(t, "심플 니트", knit.Name)
	assert.Equal(t, 14.0, knit.Score)
	assert.False(t, knit.Preferred)
	assert.Equal(t, "미니멀 스타일과 일치합니다 | 가격 대비 가성비가 우수합니다", knit.Reason)

	// Four style, two keyword and two budget queries fit the primary limit
	// and enough marketplace results skip the fallback.
	s.AssertNumberOfCalls(t, "Search", 8)
	s.AssertCalled(t, "Search", mock.Anything, mock.MatchedBy(func(req domain.SearchRequest) bool {
		return req.Query == "미니멀 스타일 무신사 인기 제품" && req.MaxResults == 5 && req.Depth == domain.SearchDepthAdvanced
	}))
	s.AssertCalled(t, "Search", mock.Anything, mock.MatchedBy(func(req domain.SearchRequest) bool {
		return req.Query == "30만원대 무신사 인기 제품"
	}))
}

func TestRecommender_PreferredBonusFollowsURL(t *testing.T) {
	s := new(MockSearcher)
	s.On("Search", mock.Anything, mock.Anything).Return(respond(
		domain.RawResult{
			URL:     "https://www.musinsa.com/products/9",
			Title:   "오버핏 코트",
			Content: "판매가 320,000원",
		},
		domain.RawResult{
			URL:     "https://shop.example.com/1",
			Title:   "오버핏 자켓",
			Content: "무신사 단독 판매가 330,000원",
		},
		domain.RawResult{
			URL:     "https://blog.example.com/2",
			Title:   "오버핏 셔츠",
			Content: "판매가 340,000원",
		},
	), nil)

	r := NewRecommender(newCollector(s, logger.NewNoOp()), newPrices(), newRatings(), musinsa, logger.NewNoOp())
	rec, err := r.Recommend(context.Background(), "오버핏 30만원대")
	require.NoError(t, err)
	require.Len(t, rec.Candidates, 3)

	byURL := map[string]domain.Candidate{}
	for _, c := range rec.Candidates {
		byURL[c.Result.URL] = c
	}
	storeOnly := byURL["https://www.musinsa.com/products/9"]
	mention := byURL["https://shop.example.com/1"]
	other := byURL["https://blog.example.com/2"]

	// Every candidate matches the keyword and the budget alike, so the score
	// gap is exactly the marketplace bonus.
	assert.True(t, storeOnly.Preferred)
	assert.True(t, mention.Preferred)
	assert.False(t, other.Preferred)
	assert.Equal(t, storeOnly.Score, mention.Score)
	assert.Equal(t, 25.0, storeOnly.Score-other.Score)
}

func TestRecommender_DefaultQueriesAndNoResults(t *testing.T) {
	s := new(MockSearcher)
	s.On("Search", mock.Anything, mock.Anything).Return(respond(), nil)

	r := NewRecommender(newCollector(s, logger.NewNoOp()), newPrices(), newRatings(), musinsa, logger.NewNoOp())
	_, err := r.Recommend(context.Background(), "아무거나")
	assert.ErrorIs(t, err, domain.ErrNoResults)

	// "아무거나" is a free keyword, so keyword queries are issued.
	s.AssertCalled(t, "Search", mock.Anything, mock.MatchedBy(func(req domain.SearchRequest) bool {
		return req.Query == "아무거나 site:musinsa.com"
	}))
}

func TestRecommender_PlanDefaults(t *testing.T) {
	r := NewRecommender(newCollector(new(MockSearcher), logger.NewNoOp()), newPrices(), newRatings(), musinsa, logger.NewNoOp())

	plan := r.plan(domain.Preferences{})
	assert.Equal(t, []string{"무신사 인기 제품", "site:musinsa.com 인기"}, plan.Primary)
	assert.Empty(t, plan.Fallback)

	plan = r.plan(domain.Preferences{
		Styles:   []string{"스트릿", "빈티지"},
		Keywords: []string{"a", "b", "c", "d"},
	})
	assert.Len(t, plan.Primary, 14)
	assert.Equal(t, 8, plan.PrimaryLimit)
	assert.Equal(t, []string{"스트릿 스타일 인기 제품", "빈티지 스타일 인기 제품"}, plan.Fallback)
	assert.Equal(t, 3, plan.FallbackLimit)
	assert.NotContains(t, plan.Primary, "d 무신사 제품")
}

func TestRecommender_EmptyInput(t *testing.T) {
	r := NewRecommender(newCollector(new(MockSearcher), logger.NewNoOp()), newPrices(), newRatings(), musinsa, logger.NewNoOp())

	_, err := r.Recommend(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}
