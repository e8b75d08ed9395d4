package engine

import (
	"testing"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizonConfidence(t *testing.T) {
	tests := []struct {
		name    string
		overall int
		base    float64
		factor  float64
		min     float64
		max     float64
		want    int
	}{
		{name: "short neutral", overall: 50, base: shortConfidenceBase, factor: shortConfidenceFactor, min: shortConfidenceMin, max: shortConfidenceMax, want: 50},
		{name: "short capped high", overall: 100, base: shortConfidenceBase, factor: shortConfidenceFactor, min: shortConfidenceMin, max: shortConfidenceMax, want: 75},
		{name: "short floored low", overall: 0, base: shortConfidenceBase, factor: shortConfidenceFactor, min: shortConfidenceMin, max: shortConfidenceMax, want: 35},
		{name: "medium capped high", overall: 100, base: mediumConfidenceBase, factor: mediumConfidenceFactor, min: mediumConfidenceMin, max: mediumConfidenceMax, want: 70},
		{name: "medium floored low", overall: 0, base: mediumConfidenceBase, factor: mediumConfidenceFactor, min: mediumConfidenceMin, max: mediumConfidenceMax, want: 30},
		{name: "long capped high", overall: 100, base: longConfidenceBase, factor: longConfidenceFactor, min: longConfidenceMin, max: longConfidenceMax, want: 55},
		{name: "long floored low", overall: 0, base: longConfidenceBase, factor: longConfidenceFactor, min: longConfidenceMin, max: longConfidenceMax, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := horizonConfidence(tt.overall, tt.base, tt.factor, tt.min, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreDirection(t *testing.T) {
	tests := []struct {
		score float64
		want  dto.Direction
	}{
		{score: 61, want: dto.DirectionBullish},
		{score: 60, want: dto.DirectionSlightlyBullish},
		{score: 56, want: dto.DirectionSlightlyBullish},
		{score: 55, want: dto.DirectionNeutral},
		{score: 45, want: dto.DirectionNeutral},
		{score: 44.5, want: dto.DirectionSlightlyBearish},
		{score: 40, want: dto.DirectionSlightlyBearish},
		{score: 39, want: dto.DirectionBearish},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreDirection(tt.score), "score=%v", tt.score)
	}
}

func TestRiskLevels(t *testing.T) {
	assert.Equal(t, dto.RiskHigh, betaRisk(1.6, 1.5, 1))
	assert.Equal(t, dto.RiskMedium, betaRisk(1.2, 1.5, 1))
	assert.Equal(t, dto.RiskLow, betaRisk(0.9, 1.5, 1))

	// Volatility score is inverted risk: a low score means a risky stock.
	assert.Equal(t, dto.RiskHigh, volatilityRisk(39))
	assert.Equal(t, dto.RiskMedium, volatilityRisk(59))
	assert.Equal(t, dto.RiskLow, volatilityRisk(60))
}

func TestComputePredictionBullish(t *testing.T) {
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()
	rating := eng.ComputeRating(stock)

	prediction := eng.ComputePrediction(stock, rating)

	assert.Equal(t, "1-7 days", prediction.ShortTerm.Period)
	assert.Equal(t, "1-3 months", prediction.MediumTerm.Period)
	assert.Equal(t, "1+ year", prediction.LongTerm.Period)
	assert.Equal(t, PredictionDisclaimer, prediction.Disclaimer)
	assert.NotEmpty(t, prediction.AIInsight)

	for _, tf := range []dto.PredictionTimeframe{prediction.ShortTerm, prediction.MediumTerm, prediction.LongTerm} {
		assert.NotEmpty(t, tf.Direction)
		assert.NotEmpty(t, tf.Explanation)
		assert.Greater(t, tf.PriceTarget.High, tf.PriceTarget.Low)
	}

	assert.GreaterOrEqual(t, prediction.ShortTerm.Confidence, 35)
	assert.LessOrEqual(t, prediction.ShortTerm.Confidence, 75)
	assert.GreaterOrEqual(t, prediction.MediumTerm.Confidence, 30)
	assert.LessOrEqual(t, prediction.MediumTerm.Confidence, 70)
	assert.GreaterOrEqual(t, prediction.LongTerm.Confidence, 25)
	assert.LessOrEqual(t, prediction.LongTerm.Confidence, 60)
}

func TestComputePredictionMidCanLeaveBand(t *testing.T) {
	// A stock climbing 1% a day annualizes to roughly +250%, and with a calm
	// volatility profile the long-term band tops out at +50%. The mid target
	// follows the trend and lands above the high target on purpose.
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()
	stock.PriceHistory = trendingHistory(260, 100, 1.0)
	last := stock.PriceHistory[len(stock.PriceHistory)-1]
	stock.Price = last.Close
	stock.Beta = 0.8

	rating := eng.ComputeRating(stock)
	require.Greater(t, rating.Overall, 50)
	require.GreaterOrEqual(t, rating.Components.Volatility.Score, 60)

	prediction := eng.ComputePrediction(stock, rating)

	assert.Greater(t, prediction.LongTerm.PriceTarget.Mid, prediction.LongTerm.PriceTarget.High)
}

func TestComputePredictionShortDirectionFollowsSentiment(t *testing.T) {
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()

	rating := eng.ComputeRating(stock)
	rating.Components.MarketSentiment.Score = 70
	rating.Components.TechnicalTrend.Score = 70

	prediction := eng.ComputePrediction(stock, rating)
	assert.Equal(t, dto.DirectionBullish, prediction.ShortTerm.Direction)

	rating.Components.TechnicalTrend.Score = 50
	prediction = eng.ComputePrediction(stock, rating)
	assert.Equal(t, dto.DirectionSlightlyBullish, prediction.ShortTerm.Direction)

	rating.Components.MarketSentiment.Score = 40
	rating.Components.TechnicalTrend.Score = 40
	prediction = eng.ComputePrediction(stock, rating)
	assert.Equal(t, dto.DirectionBearish, prediction.ShortTerm.Direction)
}
