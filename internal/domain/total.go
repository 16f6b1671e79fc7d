package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxTotal = decimal.NewFromFloat(math.MaxFloat64)

// ComputeTotal sums the ingredient prices left to right. The sum is kept
// in exact decimal arithmetic and converted back once, so the result does
// not depend on ingredient order. An empty list totals 0.
//
// Prices that are not finite add nothing. A sum beyond the float64 range
// saturates at math.MaxFloat64.
func ComputeTotal(ingredients []Ingredient) float64 {
	sum := decimal.Zero
	for _, ing := range ingredients {
		if !finite(ing.Price) {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(ing.Price))
	}
	if sum.GreaterThan(maxTotal) {
		return math.MaxFloat64
	}
	if sum.LessThan(maxTotal.Neg()) {
		return -math.MaxFloat64
	}
	return sum.InexactFloat64()
}
