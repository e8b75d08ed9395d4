package engine

import (
	"math"

	"stock-advisor/internal/dto"
)

// componentResult is the raw output of one factor calculator before it is
// packaged into a dto.ComponentScore.
type componentResult struct {
	score       float64
	explanation string
}

// componentCalculator is one of the five rating factors. Calculators are pure:
// same stock in, same score out.
type componentCalculator interface {
	Name() string
	Label() string
	Weight() float64
	Score(stock *dto.Stock) componentResult
}

// clampScore bounds a raw factor score to [0,100] without rounding, so that
// explanation tiers see the same value the caller will round.
func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// roundScore converts a clamped score to its integer form.
func roundScore(v float64) int {
	return int(math.Round(v))
}

// lastN returns the trailing n points of history, or all of it when shorter.
func lastN(history []dto.PricePoint, n int) []dto.PricePoint {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// avgClose is the arithmetic mean of closing prices.
func avgClose(points []dto.PricePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Close
	}
	return sum / float64(len(points))
}

// dailyReturns computes consecutive close-to-close returns, guarding zero closes.
func dailyReturns(points []dto.PricePoint) []float64 {
	returns := make([]float64, 0, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (points[i].Close-prev)/prev)
	}
	return returns
}
