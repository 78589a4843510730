package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CalculateSharpeRatio returns the annualised Sharpe ratio of periodic returns.
//
//	Sharpe = (mean return - periodic risk-free rate) / stddev × sqrt(periodsPerYear)
//
// riskFreeRate is annual, as a decimal (0.02 for 2%).
func CalculateSharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) *float64 {
	if len(returns) < 2 {
		return nil
	}

	mean, stdDev := stat.MeanStdDev(returns, nil)
	if stdDev == 0 {
		return nil
	}

	periodicRiskFree := riskFreeRate / float64(periodsPerYear)
	sharpe := (mean - periodicRiskFree) / stdDev * math.Sqrt(float64(periodsPerYear))
	return &sharpe
}

// CalculateVolatility returns the annualised standard deviation of periodic returns
func CalculateVolatility(returns []float64, periodsPerYear int) *float64 {
	if len(returns) < 2 {
		return nil
	}
	vol := stat.StdDev(returns, nil) * math.Sqrt(float64(periodsPerYear))
	return &vol
}

// CalculateBeta returns cov(asset, benchmark) / var(benchmark).
// Both series must have the same length.
func CalculateBeta(assetReturns, benchmarkReturns []float64) *float64 {
	if len(assetReturns) < 2 || len(assetReturns) != len(benchmarkReturns) {
		return nil
	}

	variance := stat.Variance(benchmarkReturns, nil)
	if variance == 0 {
		return nil
	}

	beta := stat.Covariance(assetReturns, benchmarkReturns, nil) / variance
	return &beta
}
