package service

import (
	"math"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
)

// RoundingPrecision is the divisor used by round for two-decimal rounding of
// monetary values in API responses.
const RoundingPrecision = 100

// CurrentValue returns the market value of a position at the given price.
func CurrentValue(s model.Stock, price float64) float64 {
	return float64(s.Quantity) * price
}

// GainLossPct returns the relative change of the given price versus the
// stock's buy price, in percent.
//
// A non-positive buy price violates the model invariant and returns
// apperrors.ErrInvalidStock instead of producing Inf or NaN.
func GainLossPct(s model.Stock, price float64) (float64, error) {
	if s.BuyPrice <= 0 {
		return 0, apperrors.ErrInvalidStock
	}
	return (price - s.BuyPrice) / s.BuyPrice * 100, nil
}

// round rounds a float64 value to two decimal places. Rounding is applied
// only to aggregate output values; per-stock prices and distribution
// percentages are passed through unrounded.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
