package engine

import (
	"fmt"
	"math"

	"stock-advisor/internal/dto"
)

// volatilityScore scores price stability. Higher score means lower risk: the
// base is derived from beta and the annualized standard deviation of the
// trailing 30 daily returns is subtracted from it.
type volatilityScore struct{}

func (volatilityScore) Name() string    { return "volatility" }
func (volatilityScore) Label() string   { return "Volatility" }
func (volatilityScore) Weight() float64 { return 0.20 }

func (volatilityScore) Score(stock *dto.Stock) componentResult {
	score := 100 - (stock.Beta-1)*50

	returns := dailyReturns(lastN(stock.PriceHistory, 30))
	if len(returns) > 0 {
		var mean float64
		for _, r := range returns {
			mean += r
		}
		mean /= float64(len(returns))

		var variance float64
		for _, r := range returns {
			variance += (r - mean) * (r - mean)
		}
		variance /= float64(len(returns))

		annualizedVol := math.Sqrt(variance) * math.Sqrt(252) * 100
		score -= annualizedVol * 0.5
	}

	score = clampScore(score)

	var explanation string
	switch {
	case score >= 70:
		explanation = fmt.Sprintf("Low volatility (beta: %.2f). Stable price movements.", stock.Beta)
	case score >= 50:
		explanation = fmt.Sprintf("Moderate volatility (beta: %.2f). Average price swings.", stock.Beta)
	case score >= 30:
		explanation = fmt.Sprintf("High volatility (beta: %.2f). Larger price movements expected.", stock.Beta)
	default:
		explanation = fmt.Sprintf("Very high volatility (beta: %.2f). Significant price swings common.", stock.Beta)
	}

	return componentResult{score: score, explanation: explanation}
}
