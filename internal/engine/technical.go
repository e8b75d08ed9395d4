package engine

import "stock-advisor/internal/dto"

// technicalTrend scores price momentum: position versus the 20/50/200-point
// moving averages, the 20-over-50 alignment, and a 14-style momentum
// oscillator computed over the trailing 20 points.
type technicalTrend struct{}

func (technicalTrend) Name() string    { return "technicalTrend" }
func (technicalTrend) Label() string   { return "Technical Trend" }
func (technicalTrend) Weight() float64 { return 0.25 }

func (technicalTrend) Score(stock *dto.Stock) componentResult {
	history := stock.PriceHistory
	if len(history) < 50 {
		return componentResult{score: 50, explanation: "Insufficient data for technical analysis"}
	}

	recent20 := lastN(history, 20)
	avg20 := avgClose(recent20)
	avg50 := avgClose(lastN(history, 50))
	avg200 := avgClose(lastN(history, 200))

	// Price above its moving averages is bullish.
	priceVs20 := (stock.Price - avg20) / avg20
	priceVs50 := (stock.Price - avg50) / avg50
	priceVs200 := (stock.Price - avg200) / avg200

	// Golden cross: short average above the medium one.
	maAlignment := -10.0
	if avg20 > avg50 {
		maAlignment = 15.0
	}

	var gains, losses float64
	for i := 1; i < len(recent20); i++ {
		change := recent20[i].Close - recent20[i-1].Close
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	// Oscillator is defined as 100 when there are no losses.
	oscillator := 100.0
	if losses != 0 {
		oscillator = 100 - 100/(1+gains/losses)
	}

	oscScore := 50.0
	switch {
	case oscillator < 30: // oversold, potential buy
		oscScore = 70
	case oscillator > 70: // overbought, potential sell
		oscScore = 30
	}

	score := 50.0
	score += priceVs20 * 100 * 0.3
	score += priceVs50 * 80 * 0.2
	score += priceVs200 * 60 * 0.2
	score += maAlignment
	score += (oscScore - 50) * 0.3

	score = clampScore(score)

	var explanation string
	switch {
	case score >= 70:
		explanation = "Strong upward trend with positive momentum across timeframes"
	case score >= 55:
		explanation = "Moderately bullish trend with improving momentum"
	case score >= 45:
		explanation = "Neutral trend, consolidating within a range"
	case score >= 30:
		explanation = "Weakening trend with declining momentum"
	default:
		explanation = "Strong downward trend with negative momentum"
	}

	return componentResult{score: score, explanation: explanation}
}
