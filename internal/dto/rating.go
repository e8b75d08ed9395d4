package dto

import "time"

type RatingLabel string

const (
	RatingStrongBuy       RatingLabel = "Strong Buy"
	RatingGoodOpportunity RatingLabel = "Good Opportunity"
	RatingNeutral         RatingLabel = "Neutral"
	RatingCaution         RatingLabel = "Caution"
	RatingHighRisk        RatingLabel = "High Risk"
)

type RatingColor string

const (
	ColorGreen  RatingColor = "green"
	ColorLime   RatingColor = "lime"
	ColorYellow RatingColor = "yellow"
	ColorOrange RatingColor = "orange"
	ColorRed    RatingColor = "red"
)

// ComponentScore is one of the five rating factors.
type ComponentScore struct {
	Score       int     `json:"score"`
	Weight      float64 `json:"weight"`
	Label       string  `json:"label"`
	Explanation string  `json:"explanation"`
}

// RatingComponents holds exactly the five named factors.
type RatingComponents struct {
	TechnicalTrend  ComponentScore `json:"technical_trend"`
	FinancialHealth ComponentScore `json:"financial_health"`
	Volatility      ComponentScore `json:"volatility"`
	MarketSentiment ComponentScore `json:"market_sentiment"`
	GrowthPotential ComponentScore `json:"growth_potential"`
}

// StockRating is the weighted 0-100 rating derived from a single stock.
type StockRating struct {
	Overall     int              `json:"overall"`
	Label       RatingLabel      `json:"label"`
	Color       RatingColor      `json:"color"`
	Components  RatingComponents `json:"components"`
	Explanation string           `json:"explanation"`
	LastUpdated time.Time        `json:"last_updated"`
}
