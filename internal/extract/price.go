package extract

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

// PriceBounds are the tunable limits of the price extractor.
type PriceBounds struct {
	// Floor and Ceiling bound every accepted price, inclusive.
	Floor   int
	Ceiling int
	// ShippingCeiling bounds an extracted shipping fee, inclusive.
	ShippingCeiling int
	// ExcludeWindow is the distance in characters within which an
	// exclusion word disqualifies a bare amount.
	ExcludeWindow int
	// KeywordWindow is the context radius in characters searched for
	// price words around a bare amount.
	KeywordWindow int
}

// DefaultPriceBounds returns bounds tuned for KRW fashion listings.
func DefaultPriceBounds() PriceBounds {
	return PriceBounds{
		Floor:           5000,
		Ceiling:         5000000,
		ShippingCeiling: 50000,
		ExcludeWindow:   20,
		KeywordWindow:   30,
	}
}

var (
	currencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(amount + `\s*원`),
		regexp.MustCompile(`₩\s*` + amount),
	}

	anchoredPricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:가격|판매가격|판매가|현재가격|현재가|최저가|할인가격|할인가|최종가격|최종가)\s*:?\s*` + amount + `\s*원`),
		regexp.MustCompile(`(?i)` + amount + `\s*원\s*(?:가격|판매가격|판매가|현재가격|할인가격)`),
		regexp.MustCompile(`(?i)price\s*:?\s*` + amount + `\s*원`),
		regexp.MustCompile(`(?i)₩\s*` + amount + `\s*(?:가격|price)`),
		regexp.MustCompile(`(?i)(?:원가|정가|할인전가격|할인 전 가격)\s*:?\s*` + amount + `\s*원`),
	}

	originalPricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:원가|정가|할인전가격|할인 전 가격|기존가격)\s*:?\s*` + amount + `\s*원`),
		regexp.MustCompile(`(?i)` + amount + `\s*원\s*(?:원가|정가|할인전)`),
	}

	discountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)%\s*(?:할인|OFF|DC|discount)`),
		regexp.MustCompile(`(?i)(?:할인|discount)\s*(\d+)%`),
		regexp.MustCompile(`(\d+)%\s*↓`),
	}

	shippingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`배송비\s*:?\s*` + integer + `\s*원`),
		regexp.MustCompile(`배송\s*:?\s*` + integer + `\s*원`),
	}
)

// Words that mark a nearby amount as something other than a price: review
// counts, ratings, shipping, stock and dates.
var excludeWords = []string{
	"리뷰", "review", "후기", "평점", "rating", "점수", "score",
	"배송비", "배송", "shipping", "delivery",
	"수량", "quantity", "재고", "stock",
	"년", "월", "일", "year", "month", "day",
}

var priceWords = []string{
	"가격", "price", "원가", "정가", "판매가", "할인가", "현재가", "최저가", "최종가",
}

// PriceExtractor pulls PriceInfo out of free text.
type PriceExtractor struct {
	bounds PriceBounds
}

// NewPriceExtractor creates a PriceExtractor. Zero fields of bounds take the
// default value.
func NewPriceExtractor(bounds PriceBounds) *PriceExtractor {
	def := DefaultPriceBounds()
	if bounds.Floor <= 0 {
		bounds.Floor = def.Floor
	}
	if bounds.Ceiling <= 0 {
		bounds.Ceiling = def.Ceiling
	}
	if bounds.ShippingCeiling <= 0 {
		bounds.ShippingCeiling = def.ShippingCeiling
	}
	if bounds.ExcludeWindow <= 0 {
		bounds.ExcludeWindow = def.ExcludeWindow
	}
	if bounds.KeywordWindow <= 0 {
		bounds.KeywordWindow = def.KeywordWindow
	}
	return &PriceExtractor{bounds: bounds}
}

// Bounds returns the effective bounds.
func (e *PriceExtractor) Bounds() PriceBounds {
	return e.bounds
}

// Extract returns the price facts found in text. Text without any currency
// amount yields an empty PriceInfo.
func (e *PriceExtractor) Extract(text string) domain.PriceInfo {
	var info domain.PriceInfo

	text = Normalize(text)
	if !hasCurrencyAmount(text) {
		return info
	}

	info.CurrentPrice = e.currentPrice(text)
	if info.CurrentPrice != nil {
		info.FinalPrice = domain.IntPtr(*info.CurrentPrice)
	}

	if original, ok := maxOf(e.collect(text, originalPricePatterns)); ok {
		if info.CurrentPrice == nil || original >= *info.CurrentPrice {
			info.OriginalPrice = domain.IntPtr(original)
		}
	}

	if rate, ok := maxOf(discountRates(text)); ok {
		info.DiscountRate = domain.FloatPtr(float64(rate))
	}

	reconcile(&info)
	info.Shipping = e.shipping(text)

	return info
}

func hasCurrencyAmount(text string) bool {
	for _, re := range currencyPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (e *PriceExtractor) inRange(v int) bool {
	return v >= e.bounds.Floor && v <= e.bounds.Ceiling
}

// collect returns every in-range amount captured by patterns.
func (e *PriceExtractor) collect(text string, patterns []*regexp.Regexp) []int {
	var out []int
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := parseAmount(m[1]); ok && e.inRange(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

type priceCandidate struct {
	value  int
	tagged bool
	pos    int
}

func (e *PriceExtractor) currentPrice(text string) *int {
	if v, ok := minOf(e.collect(text, anchoredPricePatterns)); ok {
		return domain.IntPtr(v)
	}

	candidates := e.bareCandidates(text)
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].tagged != candidates[j].tagged {
			return candidates[i].tagged
		}
		return candidates[i].pos < candidates[j].pos
	})
	if candidates[0].tagged {
		return domain.IntPtr(candidates[0].value)
	}

	// None is tagged. The lowest amount is often a shipping fee, so the
	// second-lowest distinct amount is preferred.
	distinct := distinctSorted(candidates)
	if len(distinct) >= 2 {
		if distinct[1] >= e.bounds.Floor {
			return domain.IntPtr(distinct[1])
		}
		return domain.IntPtr(distinct[0])
	}
	return domain.IntPtr(distinct[0])
}

// bareCandidates scans every amount followed by 원 or preceded by ₩, dropping
// those next to an exclusion word and tagging those near a price word.
func (e *PriceExtractor) bareCandidates(text string) []priceCandidate {
	lower := lowerRunes(text)
	var out []priceCandidate

	for _, re := range currencyPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			v, ok := parseAmount(text[loc[2]:loc[3]])
			if !ok || !e.inRange(v) {
				continue
			}

			start := utf8.RuneCountInString(text[:loc[0]])
			end := start + utf8.RuneCountInString(text[loc[0]:loc[1]])
			ctxStart := max(0, start-e.bounds.KeywordWindow)
			ctxEnd := min(len(lower), end+e.bounds.KeywordWindow)
			context := string(lower[ctxStart:ctxEnd])

			if nearWord(context, excludeWords, start-ctxStart, e.bounds.ExcludeWindow) {
				continue
			}
			out = append(out, priceCandidate{
				value:  v,
				tagged: containsAny(context, priceWords),
				pos:    start,
			})
		}
	}
	return out
}

// nearWord reports whether any occurrence of words in context starts within
// window characters of pos.
func nearWord(context string, words []string, pos, window int) bool {
	for _, w := range words {
		for _, at := range runeOffsets(context, w) {
			d := at - pos
			if d < 0 {
				d = -d
			}
			if d < window {
				return true
			}
		}
	}
	return false
}

func distinctSorted(candidates []priceCandidate) []int {
	seen := make(map[int]struct{}, len(candidates))
	var out []int
	for _, c := range candidates {
		if _, ok := seen[c.value]; ok {
			continue
		}
		seen[c.value] = struct{}{}
		out = append(out, c.value)
	}
	sort.Ints(out)
	return out
}

func discountRates(text string) []int {
	var out []int
	for _, re := range discountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := parseAmount(m[1]); ok && v >= 1 && v <= 99 {
				out = append(out, v)
			}
		}
	}
	return out
}

// reconcile derives a missing original price or discount rate from the other
// two fields. Only one direction is applied.
func reconcile(info *domain.PriceInfo) {
	switch {
	case info.CurrentPrice != nil && info.DiscountRate != nil && info.OriginalPrice == nil:
		original := float64(*info.CurrentPrice) / (1 - *info.DiscountRate/100)
		info.OriginalPrice = domain.IntPtr(int(math.Round(original)))
	case info.CurrentPrice != nil && info.OriginalPrice != nil && info.DiscountRate == nil:
		if *info.OriginalPrice > *info.CurrentPrice {
			rate := (1 - float64(*info.CurrentPrice)/float64(*info.OriginalPrice)) * 100
			info.DiscountRate = domain.FloatPtr(math.Round(rate*10) / 10)
		}
	}
}

func (e *PriceExtractor) shipping(text string) *domain.Shipping {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(text, "무료배송") || strings.Contains(text, "무료 배송") || strings.Contains(lower, "free shipping"):
		return &domain.Shipping{Cost: 0}
	case strings.Contains(text, "착불") || strings.Contains(lower, "cash on delivery"):
		return &domain.Shipping{CashOnDelivery: true}
	}

	for _, re := range shippingPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := parseAmount(m[1]); ok && v <= e.bounds.ShippingCeiling {
			return &domain.Shipping{Cost: v}
		}
	}
	return nil
}

func minOf(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

func maxOf(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}
