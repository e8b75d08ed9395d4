package engine

import (
	"testing"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingTier(t *testing.T) {
	tests := []struct {
		overall   int
		wantLabel dto.RatingLabel
		wantColor dto.RatingColor
	}{
		{overall: 100, wantLabel: dto.RatingStrongBuy, wantColor: dto.ColorGreen},
		{overall: 75, wantLabel: dto.RatingStrongBuy, wantColor: dto.ColorGreen},
		{overall: 74, wantLabel: dto.RatingGoodOpportunity, wantColor: dto.ColorLime},
		{overall: 60, wantLabel: dto.RatingGoodOpportunity, wantColor: dto.ColorLime},
		{overall: 59, wantLabel: dto.RatingNeutral, wantColor: dto.ColorYellow},
		{overall: 45, wantLabel: dto.RatingNeutral, wantColor: dto.ColorYellow},
		{overall: 44, wantLabel: dto.RatingCaution, wantColor: dto.ColorOrange},
		{overall: 30, wantLabel: dto.RatingCaution, wantColor: dto.ColorOrange},
		{overall: 29, wantLabel: dto.RatingHighRisk, wantColor: dto.ColorRed},
		{overall: 0, wantLabel: dto.RatingHighRisk, wantColor: dto.ColorRed},
	}

	for _, tt := range tests {
		label, color := ratingTier(tt.overall)
		assert.Equal(t, tt.wantLabel, label, "overall=%d", tt.overall)
		assert.Equal(t, tt.wantColor, color, "overall=%d", tt.overall)
	}
}

func ratingFixtureStock() *dto.Stock {
	history := trendingHistory(260, 100, 0.1)
	last := history[len(history)-1]
	prev := history[len(history)-2]

	high, low := last.Close, last.Close
	for _, p := range history[len(history)-252:] {
		if p.High > high {
			high = p.High
		}
		if p.Low < low {
			low = p.Low
		}
	}

	return &dto.Stock{
		Ticker:        "TEST",
		Name:          "Test Corp",
		Sector:        "Technology",
		Price:         last.Close,
		PreviousClose: prev.Close,
		Change:        last.Close - prev.Close,
		ChangePercent: (last.Close - prev.Close) / prev.Close * 100,
		MarketCap:     500e9,
		Volume:        1e6,
		AvgVolume:     1e6,
		High52Week:    high,
		Low52Week:     low,
		PE:            utils.ToPointer(22.0),
		EPS:           utils.ToPointer(6.0),
		Dividend:      utils.ToPointer(1.0),
		Beta:          1.1,
		PriceHistory:  history,
	}
}

func TestComputeRatingDeterministic(t *testing.T) {
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	first := eng.ComputeRatingAt(stock, asOf)
	second := eng.ComputeRatingAt(stock, asOf)

	assert.Equal(t, first, second)
}

func TestComputeRatingTimestampIsMetadataOnly(t *testing.T) {
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()

	a := eng.ComputeRatingAt(stock, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	b := eng.ComputeRatingAt(stock, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, a.Overall, b.Overall)
	assert.Equal(t, a.Components, b.Components)
	assert.NotEqual(t, a.LastUpdated, b.LastUpdated)
}

func TestComputeRatingWeights(t *testing.T) {
	eng := New(logger.NewNop())
	stock := ratingFixtureStock()

	rating := eng.ComputeRating(stock)

	components := []dto.ComponentScore{
		rating.Components.TechnicalTrend,
		rating.Components.FinancialHealth,
		rating.Components.Volatility,
		rating.Components.MarketSentiment,
		rating.Components.GrowthPotential,
	}

	var weightSum, weighted float64
	for _, c := range components {
		require.GreaterOrEqual(t, c.Score, 0)
		require.LessOrEqual(t, c.Score, 100)
		require.NotEmpty(t, c.Explanation)
		weightSum += c.Weight
		weighted += float64(c.Score) * c.Weight
	}

	assert.InDelta(t, 1.0, weightSum, 1e-9)
	assert.InDelta(t, weighted, float64(rating.Overall), 0.5)
	assert.GreaterOrEqual(t, rating.Overall, 0)
	assert.LessOrEqual(t, rating.Overall, 100)
}

func TestAggregateExplanation(t *testing.T) {
	score := func(v int) dto.ComponentScore { return dto.ComponentScore{Score: v} }

	tests := []struct {
		name       string
		components dto.RatingComponents
		want       string
	}{
		{
			name: "all strong",
			components: dto.RatingComponents{
				TechnicalTrend:  score(70),
				FinancialHealth: score(65),
				Volatility:      score(80),
				MarketSentiment: score(95),
				GrowthPotential: score(60),
			},
			want: "This stock shows strong technical setup, solid financials, low volatility, good growth potential.",
		},
		{
			name: "all weak",
			components: dto.RatingComponents{
				TechnicalTrend:  score(20),
				FinancialHealth: score(30),
				Volatility:      score(10),
				MarketSentiment: score(5),
				GrowthPotential: score(40),
			},
			want: "This stock shows weak technicals, financial concerns, high volatility.",
		},
		{
			name: "sentiment alone never appears",
			components: dto.RatingComponents{
				TechnicalTrend:  score(50),
				FinancialHealth: score(50),
				Volatility:      score(50),
				MarketSentiment: score(95),
				GrowthPotential: score(50),
			},
			want: "This stock has mixed signals across our rating factors.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateExplanation(tt.components))
		})
	}
}
