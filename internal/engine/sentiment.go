package engine

import (
	"strings"

	"stock-advisor/internal/dto"
)

// marketSentiment scores the current mood around a stock: volume versus its
// average, today's move, and the position inside the 52-week range.
type marketSentiment struct{}

func (marketSentiment) Name() string    { return "marketSentiment" }
func (marketSentiment) Label() string   { return "Market Sentiment" }
func (marketSentiment) Weight() float64 { return 0.15 }

func (marketSentiment) Score(stock *dto.Stock) componentResult {
	score := 50.0
	var factors []string

	var volumeRatio float64
	if stock.AvgVolume > 0 {
		volumeRatio = stock.Volume / stock.AvgVolume
	}
	switch {
	case volumeRatio > 1.5 && stock.ChangePercent > 0:
		score += 15
		factors = append(factors, "High buying volume")
	case volumeRatio > 1.5 && stock.ChangePercent < 0:
		score -= 10
		factors = append(factors, "High selling pressure")
	case volumeRatio < 0.7:
		score -= 5
		factors = append(factors, "Below average interest")
	}

	switch {
	case stock.ChangePercent > 3:
		score += 15
		factors = append(factors, "Strong bullish momentum today")
	case stock.ChangePercent > 1:
		score += 10
		factors = append(factors, "Positive sentiment")
	case stock.ChangePercent < -3:
		score -= 15
		factors = append(factors, "Bearish pressure")
	case stock.ChangePercent < -1:
		score -= 10
		factors = append(factors, "Negative sentiment")
	}

	// A zero 52-week range yields no position adjustment.
	if range52 := stock.High52Week - stock.Low52Week; range52 > 0 {
		position := (stock.Price - stock.Low52Week) / range52
		if position > 0.9 {
			score += 5
			factors = append(factors, "Near 52-week high")
		} else if position < 0.2 {
			score -= 5
			factors = append(factors, "Near 52-week low")
		}
	}

	explanation := strings.Join(factors, ". ")
	if explanation == "" {
		explanation = "Neutral market sentiment"
	}

	return componentResult{score: clampScore(score), explanation: explanation}
}
