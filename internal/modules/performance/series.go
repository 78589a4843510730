// Package performance produces the portfolio-versus-benchmark history and the KPI cards.
package performance

import (
	"math"
	"math/rand"
	"time"
)

// DateLayout is the format of Point.Date
const DateLayout = "2006-01-02"

// Series parameters
const (
	StartValue     = 100000.0
	SampleInterval = 7 // days between recorded points
)

// DefaultStart is the first day of the built-in series
var DefaultStart = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

// Point is one sample of the history chart
type Point struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Benchmark float64 `json:"benchmark"`
}

// Time parses the point date
func (p Point) Time() time.Time {
	t, _ := time.Parse(DateLayout, p.Date)
	return t
}

// GenerateSeries simulates daily returns for days days and records every seventh day.
// The same seed always yields the same series.
func GenerateSeries(start time.Time, days int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))

	portfolio := StartValue
	benchmark := StartValue
	points := make([]Point, 0, days/SampleInterval+1)

	for i := 0; i < days; i++ {
		portfolio *= 1 + (rng.Float64()-0.48)*0.02
		benchmark *= 1 + (rng.Float64()-0.48)*0.015

		if i%SampleInterval == 0 {
			points = append(points, Point{
				Date:      start.AddDate(0, 0, i).Format(DateLayout),
				Portfolio: math.Round(portfolio),
				Benchmark: math.Round(benchmark),
			})
		}
	}
	return points
}

func portfolioValues(series []Point) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Portfolio
	}
	return out
}

func benchmarkValues(series []Point) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Benchmark
	}
	return out
}
