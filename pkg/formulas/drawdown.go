package formulas

// CalculateMaxDrawdown returns the largest peak-to-trough decline of a value series
// as a positive fraction (0.25 = 25% below the running peak).
func CalculateMaxDrawdown(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}

	maxDrawdown := 0.0
	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if drawdown := (peak - v) / peak; drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return &maxDrawdown
}
