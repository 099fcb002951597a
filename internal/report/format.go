// Package report renders pipeline results as the markdown and plain text
// shown to the user.
package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

const (
	// NoInfo marks an absent price or rating in a comparison.
	NoInfo = "정보 없음"
	// NoPrice marks an absent price in a recommendation.
	NoPrice = "가격 정보 없음"

	specColumnSize = 100
	reasonSep      = " | "
)

var printer = message.NewPrinter(language.Korean)

// Won formats an amount with Korean digit grouping, e.g. 10,000원.
func Won(amount int) string {
	return printer.Sprintf("%d원", amount)
}

// Percent formats a rate without a trailing zero fraction.
func Percent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// PriceLabel formats the final price and discount, or fallback when the
// price is unknown.
func PriceLabel(p domain.PriceInfo, fallback string) string {
	if p.FinalPrice == nil {
		return fallback
	}
	s := Won(*p.FinalPrice)
	if p.DiscountRate != nil && *p.DiscountRate > 0 {
		s += " (할인 " + Percent(*p.DiscountRate) + ")"
	}
	return s
}

// RatingLabel formats a five point rating.
func RatingLabel(r domain.RatingInfo) string {
	if r.Rating == nil {
		return NoInfo
	}
	return strconv.FormatFloat(*r.Rating, 'f', -1, 64) + " / 5점"
}

// clip cuts s to n characters and marks the cut.
func clip(s string, n int) string {
	if cut := extract.Truncate(s, n); cut != s {
		return cut + "..."
	}
	return s
}

// cell escapes pipes and flattens newlines so s fits one table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
