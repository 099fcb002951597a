package score

import (
	"math"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

// ValueWeights parameterize the value score. The price term falls linearly
// from PriceBase by PricePerUnit for every PriceUnit won.
type ValueWeights struct {
	PriceBase    float64
	PriceUnit    float64
	PricePerUnit float64
	PriceUnknown float64

	RatingMax     float64
	RatingUnknown float64

	DiscountFactor float64
	DiscountCap    float64
}

// DefaultValueWeights returns the tuned value weights.
func DefaultValueWeights() ValueWeights {
	return ValueWeights{
		PriceBase:      50,
		PriceUnit:      10000,
		PricePerUnit:   0.5,
		PriceUnknown:   25,
		RatingMax:      50,
		RatingUnknown:  25,
		DiscountFactor: 0.2,
		DiscountCap:    10,
	}
}

// Value computes the value score of one product. Unknown price or rating
// take their neutral defaults; the total is rounded to two decimals.
func Value(price domain.PriceInfo, rating domain.RatingInfo, w ValueWeights) domain.ValueBreakdown {
	var v domain.ValueBreakdown

	if price.FinalPrice != nil {
		v.Price = math.Max(0, w.PriceBase-float64(*price.FinalPrice)/w.PriceUnit*w.PricePerUnit)
	} else {
		v.Price = w.PriceUnknown
	}

	if rating.Rating != nil {
		v.Rating = *rating.Rating / 5 * w.RatingMax
	} else {
		v.Rating = w.RatingUnknown
	}

	if price.DiscountRate != nil {
		v.Discount = math.Min(w.DiscountCap, *price.DiscountRate*w.DiscountFactor)
	}

	v.Total = math.Round((v.Price+v.Rating+v.Discount)*100) / 100
	return v
}
