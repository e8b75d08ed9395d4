package engine

import (
	"fmt"
	"strings"

	"stock-advisor/internal/dto"
)

// sectorGrowthBonus is a fixed outlook bonus per sector; unknown sectors get 0.
var sectorGrowthBonus = map[string]float64{
	"Technology":             20,
	"Healthcare":             15,
	"Financial Services":     10,
	"Consumer Cyclical":      10,
	"Communication Services": 10,
	"Consumer Defensive":     5,
	"ETF":                    10,
}

// growthPotential scores forward outlook: sector, trailing-year return when a
// full year of history exists, and headroom to the 52-week high.
type growthPotential struct{}

func (growthPotential) Name() string    { return "growthPotential" }
func (growthPotential) Label() string   { return "Growth Potential" }
func (growthPotential) Weight() float64 { return 0.20 }

func (growthPotential) Score(stock *dto.Stock) componentResult {
	score := 50.0
	var factors []string

	score += sectorGrowthBonus[stock.Sector]
	factors = append(factors, fmt.Sprintf("%s sector", stock.Sector))

	if len(stock.PriceHistory) >= 252 {
		yearAgo := stock.PriceHistory[len(stock.PriceHistory)-252].Close
		if yearAgo == 0 {
			yearAgo = stock.Price
		}
		if yearAgo > 0 {
			yearReturn := (stock.Price - yearAgo) / yearAgo * 100
			switch {
			case yearReturn > 50:
				score += 25
				factors = append(factors, "Exceptional growth")
			case yearReturn > 20:
				score += 15
				factors = append(factors, "Strong growth")
			case yearReturn > 0:
				score += 5
				factors = append(factors, "Positive growth")
			case yearReturn > -20:
				score -= 10
				factors = append(factors, "Negative performance")
			default:
				score -= 20
				factors = append(factors, "Significant decline")
			}
		}
	}

	if stock.Price > 0 {
		upsideToHigh := (stock.High52Week - stock.Price) / stock.Price * 100
		if upsideToHigh > 20 {
			score += 10
			factors = append(factors, "Room to recover")
		}
	}

	return componentResult{
		score:       clampScore(score),
		explanation: strings.Join(factors, ". "),
	}
}
