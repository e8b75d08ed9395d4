package engine

import (
	"strings"

	"stock-advisor/internal/dto"
)

// financialHealth scores fundamentals: P/E valuation, earnings, dividend yield
// and market-cap stability.
type financialHealth struct{}

func (financialHealth) Name() string    { return "financialHealth" }
func (financialHealth) Label() string   { return "Financial Health" }
func (financialHealth) Weight() float64 { return 0.20 }

func (financialHealth) Score(stock *dto.Stock) componentResult {
	score := 50.0
	var factors []string

	switch {
	case stock.PE == nil || *stock.PE < 0:
		score -= 20
		factors = append(factors, "No positive earnings")
	case *stock.PE < 15:
		score += 25
		factors = append(factors, "Attractively valued")
	case *stock.PE < 25:
		score += 15
		factors = append(factors, "Reasonably valued")
	case *stock.PE < 40:
		score += 5
		factors = append(factors, "Growth premium priced in")
	default:
		score -= 10
		factors = append(factors, "High valuation")
	}

	if stock.EPS != nil && *stock.EPS > 0 {
		score += 15
		factors = append(factors, "Positive earnings")
	}

	if stock.Dividend != nil && *stock.Dividend > 0 && stock.Price > 0 {
		yieldPct := *stock.Dividend / stock.Price * 100
		if yieldPct > 3 {
			score += 10
			factors = append(factors, "Strong dividend yield")
		} else if yieldPct > 1 {
			score += 5
			factors = append(factors, "Pays dividend")
		}
	}

	if stock.MarketCap > 200e9 {
		score += 10
		factors = append(factors, "Large-cap stability")
	} else if stock.MarketCap > 10e9 {
		score += 5
		factors = append(factors, "Mid-cap growth potential")
	}

	return componentResult{
		score:       clampScore(score),
		explanation: strings.Join(factors, ". "),
	}
}
