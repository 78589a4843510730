// Package formulas implements the portfolio statistics behind the KPI cards.
//
// Functions return nil when the input is too short to produce a meaningful value.
package formulas

import "math"

// CalculateReturns converts a value series into simple periodic returns.
// A period starting from a zero value contributes a zero return.
func CalculateReturns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}
	return returns
}

// TotalReturn is the simple return from the first to the last value
func TotalReturn(values []float64) *float64 {
	if len(values) < 2 || values[0] == 0 {
		return nil
	}
	r := values[len(values)-1]/values[0] - 1
	return &r
}

// Round rounds v to the given number of decimals
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
