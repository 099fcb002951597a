// Package preference parses free-text shopping preferences such as
// "미니멀리즘, 30만원대, 아르켓 느낌" into domain.Preferences.
package preference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

// manwon is the 만원 unit in won.
const manwon = 10000

var budgetRange = regexp.MustCompile(`(\d+)\s*~\s*(\d+)\s*만\s*원`)

// Single budgets in match order. Each N means [N, N+9] 만원.
var budgetSingle = []*regexp.Regexp{
	regexp.MustCompile(`예산\s*:\s*(\d+)\s*만\s*원`),
	regexp.MustCompile(`(\d+)\s*만\s*원대`),
	regexp.MustCompile(`(\d+)\s*만\s*원`),
}

// Parse extracts styles, budget, brands and comma separated keywords from
// input. Unknown words are ignored; an empty input yields empty preferences.
func Parse(input string) domain.Preferences {
	input = extract.Normalize(input)
	lower := strings.ToLower(input)

	prefs := domain.Preferences{
		Styles:   []string{},
		Brands:   []string{},
		Keywords: []string{},
	}

	for _, style := range catalog.Styles() {
		for _, syn := range style.Synonyms {
			if strings.Contains(input, syn) || strings.Contains(lower, syn) {
				prefs.Styles = append(prefs.Styles, style.Name)
				break
			}
		}
	}

	parseBudget(input, &prefs)

	for _, brand := range catalog.Brands() {
		if strings.Contains(input, brand) || strings.Contains(lower, strings.ToLower(brand)) {
			prefs.Brands = append(prefs.Brands, brand)
		}
	}

	for _, kw := range strings.Split(input, ",") {
		kw = strings.TrimSpace(kw)
		if utf8.RuneCountInString(kw) > 1 {
			prefs.Keywords = append(prefs.Keywords, kw)
		}
	}

	return prefs
}

func parseBudget(input string, prefs *domain.Preferences) {
	if m := budgetRange.FindStringSubmatch(input); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil && lo > 0 && hi >= lo {
			prefs.Budget = fmt.Sprintf("%d~%d만원", lo, hi)
			prefs.BudgetMin = domain.IntPtr(lo * manwon)
			prefs.BudgetMax = domain.IntPtr(hi * manwon)
			return
		}
	}

	for _, re := range budgetSingle {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		prefs.Budget = fmt.Sprintf("%d만원대", n)
		prefs.BudgetMin = domain.IntPtr(n * manwon)
		prefs.BudgetMax = domain.IntPtr((n + 9) * manwon)
		return
	}
}
