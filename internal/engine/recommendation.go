package engine

import (
	"fmt"

	"stock-advisor/internal/dto"
)

// RecommendationDisclaimer is attached to every generated recommendation.
const RecommendationDisclaimer = "This is AI-generated guidance for educational purposes only. It is not personalized financial advice. Always consult with a qualified financial advisor before making investment decisions."

const (
	recommendationConfidenceMin = 30
	recommendationConfidenceMax = 85
)

// recState is the mutable builder the rules operate on, scoped to one call.
type recState struct {
	stock      *dto.Stock
	rating     *dto.StockRating
	prediction *dto.StockPrediction
	profile    *dto.UserProfile

	action       dto.Action
	confidence   int
	reasoning    []string
	riskWarnings []string
	alternatives []string
}

// recommendationRule is one step of the derivation. Rules run in a fixed
// order and may overwrite the action set by an earlier rule; the only guard
// is ruleRatingDefault's check that the action is still the initial hold.
type recommendationRule struct {
	name  string
	apply func(*recState)
}

var recommendationRules = []recommendationRule{
	{name: "risk-tolerance", apply: ruleRiskTolerance},
	{name: "investment-goal", apply: ruleInvestmentGoal},
	{name: "experience", apply: ruleExperience},
	{name: "rating-default", apply: ruleRatingDefault},
	{name: "time-horizon", apply: ruleTimeHorizon},
}

// ComputeRecommendation derives a personalized action from the stock, its
// rating and prediction, and the user profile. Fresh result per call.
func (e *Engine) ComputeRecommendation(stock *dto.Stock, rating *dto.StockRating, prediction *dto.StockPrediction, profile *dto.UserProfile) *dto.AdvisorRecommendation {
	state := &recState{
		stock:      stock,
		rating:     rating,
		prediction: prediction,
		profile:    profile,
		action:     dto.ActionHold,
		confidence: 50,
	}

	for _, rule := range recommendationRules {
		rule.apply(state)
	}

	if state.confidence < recommendationConfidenceMin {
		state.confidence = recommendationConfidenceMin
	}
	if state.confidence > recommendationConfidenceMax {
		state.confidence = recommendationConfidenceMax
	}

	reasoning := state.reasoning
	if len(reasoning) == 0 {
		reasoning = []string{"Based on current market conditions and your profile."}
	}

	var alternatives []string
	if len(state.alternatives) > 0 {
		alternatives = state.alternatives
	}

	return &dto.AdvisorRecommendation{
		Action:       state.action,
		Reasoning:    reasoning,
		RiskWarnings: state.riskWarnings,
		Alternatives: alternatives,
		Confidence:   state.confidence,
		Disclaimer:   RecommendationDisclaimer,
	}
}

func ruleRiskTolerance(s *recState) {
	volatilityScore := s.rating.Components.Volatility.Score
	isHighVolatility := volatilityScore < 40
	isMediumVolatility := volatilityScore >= 40 && volatilityScore < 60

	switch s.profile.RiskTolerance {
	case dto.RiskToleranceLow:
		if isHighVolatility {
			s.riskWarnings = append(s.riskWarnings, fmt.Sprintf("This stock's volatility (beta: %.2f) may be too high for your low risk tolerance.", s.stock.Beta))
			s.action = dto.ActionAvoid
			s.alternatives = append(s.alternatives, "SPY", "VTI", "JNJ", "KO")
		} else if isMediumVolatility && s.rating.Overall < 55 {
			s.riskWarnings = append(s.riskWarnings, "Consider lower volatility alternatives that match your conservative profile.")
			s.alternatives = append(s.alternatives, "WMT", "V")
		}
	case dto.RiskToleranceMedium:
		if isHighVolatility && s.stock.Beta > 2 {
			s.riskWarnings = append(s.riskWarnings, "This is a highly volatile stock. Consider sizing your position appropriately.")
		}
	}
}

func ruleInvestmentGoal(s *recState) {
	components := s.rating.Components

	switch s.profile.InvestmentGoal {
	case dto.GoalDayTrading:
		if s.stock.Volume < s.stock.AvgVolume*0.5 {
			s.riskWarnings = append(s.riskWarnings, "Low trading volume may make day trading difficult.")
		}
		if components.MarketSentiment.Score > 60 && components.TechnicalTrend.Score > 55 {
			s.reasoning = append(s.reasoning, "Strong short-term momentum supports day trading opportunities.")
			s.action = dto.ActionBuy
			s.confidence += 10
		}
	case dto.GoalSwingTrading:
		if components.TechnicalTrend.Score > 60 {
			s.reasoning = append(s.reasoning, "Technical setup favors swing trading entry.")
			if s.rating.Overall > 55 {
				s.action = dto.ActionBuy
			} else {
				s.action = dto.ActionHold
			}
			s.confidence += 5
		}
	case dto.GoalLongTerm:
		if components.FinancialHealth.Score > 60 && components.GrowthPotential.Score > 55 {
			s.reasoning = append(s.reasoning, "Strong fundamentals support long-term holding.")
			if s.rating.Overall > 55 {
				s.action = dto.ActionBuy
			} else {
				s.action = dto.ActionHold
			}
			s.confidence += 10
		}
		if s.stock.Dividend != nil && *s.stock.Dividend > 0 && s.stock.Price > 0 {
			yieldPct := *s.stock.Dividend / s.stock.Price * 100
			s.reasoning = append(s.reasoning, fmt.Sprintf("Dividend income (%.2f%% yield) adds to total return.", yieldPct))
		}
	}
}

func ruleExperience(s *recState) {
	if s.profile.Experience != dto.ExperienceBeginner {
		return
	}

	if s.stock.Sector == "ETF" {
		s.reasoning = append(s.reasoning, "ETFs provide diversification, which is great for beginners.")
		s.confidence += 5
	}
	if s.rating.Components.Volatility.Score < 40 {
		s.riskWarnings = append(s.riskWarnings, "As a beginner, consider starting with less volatile stocks to learn market behavior.")
	}
	if s.stock.MarketCap < 10e9 {
		s.riskWarnings = append(s.riskWarnings, "Smaller companies can be riskier. Consider larger, more established companies.")
	}
}

// ruleRatingDefault only fires while the action is still the initial hold.
func ruleRatingDefault(s *recState) {
	if s.action != dto.ActionHold {
		return
	}

	switch {
	case s.rating.Overall >= 70:
		s.action = dto.ActionBuy
		s.reasoning = append(s.reasoning, fmt.Sprintf("Strong overall rating of %d/100 across all factors.", s.rating.Overall))
		s.confidence += 15
	case s.rating.Overall >= 55:
		if s.profile.RiskTolerance == dto.RiskToleranceHigh {
			s.action = dto.ActionBuy
		} else {
			s.action = dto.ActionHold
		}
		s.reasoning = append(s.reasoning, fmt.Sprintf("Positive rating of %d/100 with some favorable factors.", s.rating.Overall))
		s.confidence += 5
	case s.rating.Overall <= 35:
		s.action = dto.ActionAvoid
		s.reasoning = append(s.reasoning, fmt.Sprintf("Low rating of %d/100 suggests significant concerns.", s.rating.Overall))
		s.riskWarnings = append(s.riskWarnings, "Multiple factors indicate elevated risk.")
	}
}

func ruleTimeHorizon(s *recState) {
	if s.profile.TimeHorizon == dto.HorizonShort && s.prediction.ShortTerm.Direction.IsBearish() {
		s.riskWarnings = append(s.riskWarnings, "Short-term outlook is negative. Consider waiting for a better entry point.")
		if s.action == dto.ActionBuy {
			s.action = dto.ActionHold
		}
	}

	if s.profile.TimeHorizon == dto.HorizonLong && s.prediction.LongTerm.Direction.IsBearish() {
		s.riskWarnings = append(s.riskWarnings, "Long-term fundamentals show some concerns. Research thoroughly before committing.")
	}
}
