package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// DefaultRSIPeriod is the classic 14-period RSI
const DefaultRSIPeriod = 14

// CalculateRSI returns the latest Relative Strength Index (0-100) of closes.
//
//	RSI = 100 - 100 / (1 + average gain / average loss)
func CalculateRSI(closes []float64, length int) *float64 {
	if length < 2 || len(closes) < length+1 {
		return nil
	}

	rsi := talib.Rsi(closes, length)
	if len(rsi) == 0 || math.IsNaN(rsi[len(rsi)-1]) {
		return nil
	}

	result := rsi[len(rsi)-1]
	return &result
}
