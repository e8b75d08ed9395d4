package engine

import (
	"fmt"
	"math"
	"strings"

	"stock-advisor/internal/dto"
)

// PredictionDisclaimer is attached to every generated forecast.
const PredictionDisclaimer = "These predictions are AI-generated estimates based on historical data and current market conditions. Past performance does not guarantee future results. Always conduct your own research before investing."

// confidence bounds and bases per horizon.
const (
	shortConfidenceBase, shortConfidenceFactor   = 50.0, 0.5
	shortConfidenceMin, shortConfidenceMax       = 35.0, 75.0
	mediumConfidenceBase, mediumConfidenceFactor = 45.0, 0.4
	mediumConfidenceMin, mediumConfidenceMax     = 30.0, 70.0
	longConfidenceBase, longConfidenceFactor     = 40.0, 0.3
	longConfidenceMin, longConfidenceMax         = 25.0, 60.0
)

func horizonConfidence(overall int, base, factor, min, max float64) int {
	v := base + float64(overall-50)*factor
	return int(math.Round(math.Min(max, math.Max(min, v))))
}

// scoreDirection maps an averaged component score to a direction against the
// 60/55/45/40 thresholds shared by the medium and long horizons.
func scoreDirection(score float64) dto.Direction {
	switch {
	case score > 60:
		return dto.DirectionBullish
	case score > 55:
		return dto.DirectionSlightlyBullish
	case score < 40:
		return dto.DirectionBearish
	case score < 45:
		return dto.DirectionSlightlyBearish
	default:
		return dto.DirectionNeutral
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputePrediction synthesizes three-horizon forecasts from a stock and its
// rating. Pure given its inputs; there is no independent randomness.
func (e *Engine) ComputePrediction(stock *dto.Stock, rating *dto.StockRating) *dto.StockPrediction {
	returns := dailyReturns(lastN(stock.PriceHistory, 30))
	var avgReturn float64
	if len(returns) > 0 {
		for _, r := range returns {
			avgReturn += r
		}
		avgReturn /= float64(len(returns))
	}
	annualizedReturn := avgReturn * 252

	trendBias := 0.0
	if rating.Overall > 50 {
		trendBias = 1
	} else if rating.Overall < 50 {
		trendBias = -1
	}

	sentiment := rating.Components.MarketSentiment.Score
	technical := rating.Components.TechnicalTrend.Score
	financial := rating.Components.FinancialHealth.Score
	growth := rating.Components.GrowthPotential.Score

	// Short term keys off sentiment, refined by the technical trend.
	var shortDirection dto.Direction
	switch {
	case sentiment > 55 && technical > 55:
		shortDirection = dto.DirectionBullish
	case sentiment > 55:
		shortDirection = dto.DirectionSlightlyBullish
	case sentiment < 45 && technical < 45:
		shortDirection = dto.DirectionBearish
	case sentiment < 45:
		shortDirection = dto.DirectionSlightlyBearish
	default:
		shortDirection = dto.DirectionNeutral
	}

	mediumDirection := scoreDirection(float64(technical+financial) / 2)
	longDirection := scoreDirection(float64(financial+growth) / 2)

	// Wider bands for more volatile stocks.
	volatilityFactor := float64(100-rating.Components.Volatility.Score) / 100

	shortMidShift := 0.0
	if shortDirection.IsBullish() {
		shortMidShift = 0.02
	} else if shortDirection.IsBearish() {
		shortMidShift = -0.02
	}
	shortTargets := dto.PriceTarget{
		Low:  round2(stock.Price * (1 - 0.03*volatilityFactor*2)),
		Mid:  round2(stock.Price * (1 + shortMidShift)),
		High: round2(stock.Price * (1 + 0.05*volatilityFactor*2)),
	}

	// The mid-point nudge is intentionally not clamped into [low, high]: a
	// strong annualized return with low volatility can push it outside the
	// band. Re-ordering would change the numeric contract.
	mediumTargets := dto.PriceTarget{
		Low:  round2(stock.Price * (1 - 0.15*volatilityFactor)),
		Mid:  round2(stock.Price * (1 + annualizedReturn/4*trendBias)),
		High: round2(stock.Price * (1 + 0.25*volatilityFactor)),
	}

	longTargets := dto.PriceTarget{
		Low:  round2(stock.Price * (1 - 0.25*volatilityFactor)),
		Mid:  round2(stock.Price * (1 + annualizedReturn*trendBias)),
		High: round2(stock.Price * (1 + 0.50*volatilityFactor)),
	}

	var insights []string
	if rating.Overall >= 60 {
		insights = append(insights, fmt.Sprintf("%s shows promising indicators across our analysis.", stock.Name))
	} else if rating.Overall <= 40 {
		insights = append(insights, fmt.Sprintf("%s faces some headwinds that warrant caution.", stock.Name))
	}
	if stock.Beta > 1.5 {
		insights = append(insights, "Higher volatility means larger potential gains but also larger potential losses.")
	}
	if financial >= 60 && growth >= 60 {
		insights = append(insights, "Strong fundamentals support the long-term outlook.")
	}

	aiInsight := strings.Join(insights, " ")
	if aiInsight == "" {
		aiInsight = fmt.Sprintf("%s presents a balanced risk-reward profile.", stock.Name)
	}

	return &dto.StockPrediction{
		ShortTerm: dto.PredictionTimeframe{
			Period:      "1-7 days",
			Direction:   shortDirection,
			Confidence:  horizonConfidence(rating.Overall, shortConfidenceBase, shortConfidenceFactor, shortConfidenceMin, shortConfidenceMax),
			RiskLevel:   betaRisk(stock.Beta, 1.5, 1),
			PriceTarget: shortTargets,
			Explanation: fmt.Sprintf("Based on current momentum and sentiment, expecting %s movement in the short term.", shortDirection.Display()),
		},
		MediumTerm: dto.PredictionTimeframe{
			Period:      "1-3 months",
			Direction:   mediumDirection,
			Confidence:  horizonConfidence(rating.Overall, mediumConfidenceBase, mediumConfidenceFactor, mediumConfidenceMin, mediumConfidenceMax),
			RiskLevel:   betaRisk(stock.Beta, 1.3, 0.9),
			PriceTarget: mediumTargets,
			Explanation: fmt.Sprintf("Technical trends and financial health suggest %s outlook over the next quarter.", mediumDirection.Display()),
		},
		LongTerm: dto.PredictionTimeframe{
			Period:     "1+ year",
			Direction:  longDirection,
			Confidence: horizonConfidence(rating.Overall, longConfidenceBase, longConfidenceFactor, longConfidenceMin, longConfidenceMax),
			// The volatility score is inverted risk, so the comparison runs the
			// opposite way from the beta-based horizons. Deliberate asymmetry.
			RiskLevel:   volatilityRisk(rating.Components.Volatility.Score),
			PriceTarget: longTargets,
			Explanation: fmt.Sprintf("Long-term fundamentals and growth potential indicate a %s trajectory.", longDirection.Display()),
		},
		AIInsight:  aiInsight,
		Disclaimer: PredictionDisclaimer,
	}
}

func betaRisk(beta, high, medium float64) dto.RiskLevel {
	switch {
	case beta > high:
		return dto.RiskHigh
	case beta > medium:
		return dto.RiskMedium
	default:
		return dto.RiskLow
	}
}

func volatilityRisk(volatilityScore int) dto.RiskLevel {
	switch {
	case volatilityScore < 40:
		return dto.RiskHigh
	case volatilityScore < 60:
		return dto.RiskMedium
	default:
		return dto.RiskLow
	}
}
