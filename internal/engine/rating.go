package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"
)

// ratingTier maps an overall score to its label and color. The boundaries at
// 75/60/45/30 form a strict partition of [0,100].
func ratingTier(overall int) (dto.RatingLabel, dto.RatingColor) {
	switch {
	case overall >= 75:
		return dto.RatingStrongBuy, dto.ColorGreen
	case overall >= 60:
		return dto.RatingGoodOpportunity, dto.ColorLime
	case overall >= 45:
		return dto.RatingNeutral, dto.ColorYellow
	case overall >= 30:
		return dto.RatingCaution, dto.ColorOrange
	default:
		return dto.RatingHighRisk, dto.ColorRed
	}
}

// ComputeRating scores the stock as of now.
func (e *Engine) ComputeRating(stock *dto.Stock) *dto.StockRating {
	return e.ComputeRatingAt(stock, time.Now())
}

// ComputeRatingAt scores the stock with an explicit as-of timestamp. The
// timestamp is metadata only and never feeds the scores, which keeps the
// computation referentially transparent for a stable price history.
func (e *Engine) ComputeRatingAt(stock *dto.Stock, asOf time.Time) *dto.StockRating {
	scores := make(map[string]dto.ComponentScore, len(e.calculators))

	var overall float64
	for _, calc := range e.calculators {
		result := calc.Score(stock)
		scores[calc.Name()] = dto.ComponentScore{
			Score:       roundScore(result.score),
			Weight:      calc.Weight(),
			Label:       calc.Label(),
			Explanation: result.explanation,
		}
		overall += float64(roundScore(result.score)) * calc.Weight()
	}

	rating := &dto.StockRating{
		Overall: int(math.Round(overall)),
		Components: dto.RatingComponents{
			TechnicalTrend:  scores["technicalTrend"],
			FinancialHealth: scores["financialHealth"],
			Volatility:      scores["volatility"],
			MarketSentiment: scores["marketSentiment"],
			GrowthPotential: scores["growthPotential"],
		},
		LastUpdated: asOf,
	}
	rating.Label, rating.Color = ratingTier(rating.Overall)
	rating.Explanation = aggregateExplanation(rating.Components)

	e.log.Debug("computed stock rating",
		logger.StringField("ticker", stock.Ticker),
		logger.Float64Field("weighted", overall),
		logger.IntField("overall", rating.Overall),
		logger.StringField("label", string(rating.Label)),
	)

	return rating
}

// aggregateExplanation summarizes the components that cross the strong (>=60)
// or weak (<=40) thresholds. Market sentiment contributes to the numeric score
// but deliberately never appears here.
func aggregateExplanation(c dto.RatingComponents) string {
	var parts []string

	if c.TechnicalTrend.Score >= 60 {
		parts = append(parts, "strong technical setup")
	} else if c.TechnicalTrend.Score <= 40 {
		parts = append(parts, "weak technicals")
	}

	if c.FinancialHealth.Score >= 60 {
		parts = append(parts, "solid financials")
	} else if c.FinancialHealth.Score <= 40 {
		parts = append(parts, "financial concerns")
	}

	if c.Volatility.Score >= 60 {
		parts = append(parts, "low volatility")
	} else if c.Volatility.Score <= 40 {
		parts = append(parts, "high volatility")
	}

	if c.GrowthPotential.Score >= 60 {
		parts = append(parts, "good growth potential")
	}

	if len(parts) == 0 {
		return "This stock has mixed signals across our rating factors."
	}
	return fmt.Sprintf("This stock shows %s.", strings.Join(parts, ", "))
}
