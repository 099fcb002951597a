package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

func candidate(name string, score float64, price *int) domain.Candidate {
	return domain.Candidate{
		Name:  name,
		Score: score,
		Price: domain.PriceInfo{CurrentPrice: price},
	}
}

func names(cands []domain.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Name
	}
	return out
}

func TestSelectTop_StrictlyDecreasing(t *testing.T) {
	cands := []domain.Candidate{
		candidate("a", 90, nil),
		candidate("b", 80, nil),
		candidate("c", 70, nil),
		candidate("d", 60, nil),
		candidate("e", 50, nil),
	}

	got := SelectTop(cands, domain.Preferences{}, 3)

	assert.Equal(t, []string{"a", "b", "c"}, names(got))
}

func TestSelectTop_StableTies(t *testing.T) {
	cands := []domain.Candidate{
		candidate("a", 10, nil),
		candidate("b", 30, nil),
		candidate("c", 30, nil),
		candidate("d", 10, nil),
	}

	got := SelectTop(cands, domain.Preferences{}, 4)

	assert.Equal(t, []string{"b", "c", "a", "d"}, names(got))
}

func TestSelectTop_BudgetFilter(t *testing.T) {
	prefs := domain.Preferences{BudgetMin: domain.IntPtr(100000), BudgetMax: domain.IntPtr(190000)}
	cands := []domain.Candidate{
		candidate("too expensive", 90, domain.IntPtr(500000)),
		candidate("unknown", 80, nil),
		candidate("fits", 70, domain.IntPtr(150000)),
		candidate("near low", 60, domain.IntPtr(75000)),
		candidate("too cheap", 50, domain.IntPtr(60000)),
	}

	got := SelectTop(cands, prefs, 3)

	assert.Equal(t, []string{"unknown", "fits", "near low"}, names(got))
}

func TestSelectTop_FilterFallback(t *testing.T) {
	prefs := domain.Preferences{BudgetMin: domain.IntPtr(100000), BudgetMax: domain.IntPtr(190000)}
	cands := []domain.Candidate{
		candidate("a", 50, domain.IntPtr(900000)),
		candidate("b", 60, domain.IntPtr(800000)),
	}

	got := SelectTop(cands, prefs, 3)

	assert.Equal(t, []string{"b", "a"}, names(got))
}

func TestSelectTop_Bounds(t *testing.T) {
	cands := []domain.Candidate{candidate("a", 1, nil), candidate("b", 2, nil)}

	assert.Len(t, SelectTop(cands, domain.Preferences{}, 5), 2)
	assert.Empty(t, SelectTop(cands, domain.Preferences{}, 0))
	assert.Empty(t, SelectTop(nil, domain.Preferences{}, 3))
}

func TestSelectTop_DoesNotMutateInput(t *testing.T) {
	cands := []domain.Candidate{candidate("a", 1, nil), candidate("b", 2, nil)}

	got := SelectTop(cands, domain.Preferences{}, 2)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, names(cands))
}
