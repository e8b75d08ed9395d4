package dto

import "strings"

type Direction string

const (
	DirectionBullish         Direction = "bullish"
	DirectionSlightlyBullish Direction = "slightly-bullish"
	DirectionNeutral         Direction = "neutral"
	DirectionSlightlyBearish Direction = "slightly-bearish"
	DirectionBearish         Direction = "bearish"
)

// IsBullish reports whether the direction has any bullish lean.
func (d Direction) IsBullish() bool {
	return strings.Contains(string(d), "bullish")
}

// IsBearish reports whether the direction has any bearish lean.
func (d Direction) IsBearish() bool {
	return strings.Contains(string(d), "bearish")
}

// Display renders the direction for prose ("slightly-bullish" -> "slightly bullish").
func (d Direction) Display() string {
	return strings.ReplaceAll(string(d), "-", " ")
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PriceTarget is a low/mid/high band in the same currency unit as Stock.Price.
// Low <= Mid <= High is intentionally not guaranteed: the mid-point nudge can
// push Mid outside the band for strongly trending, low volatility stocks.
type PriceTarget struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// PredictionTimeframe is one directional forecast horizon.
type PredictionTimeframe struct {
	Period      string      `json:"period"`
	Direction   Direction   `json:"direction"`
	Confidence  int         `json:"confidence"`
	RiskLevel   RiskLevel   `json:"risk_level"`
	PriceTarget PriceTarget `json:"price_target"`
	Explanation string      `json:"explanation"`
}

// StockPrediction is the three-horizon forecast derived from a stock and its rating.
type StockPrediction struct {
	ShortTerm  PredictionTimeframe `json:"short_term"`
	MediumTerm PredictionTimeframe `json:"medium_term"`
	LongTerm   PredictionTimeframe `json:"long_term"`
	AIInsight  string              `json:"ai_insight"`
	Disclaimer string              `json:"disclaimer"`
}
