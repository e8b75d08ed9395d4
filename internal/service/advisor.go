package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/internal/dto"
	"stock-advisor/internal/engine"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/utils"
)

// AdvisorService turns free-text questions into chat replies built from the
// engine's outputs. The "AI" is a fixed set of intent patterns, not a model.
type AdvisorService interface {
	Chat(ctx context.Context, message string) (*dto.ChatResponse, error)
	Welcome(ctx context.Context) (*dto.ChatResponse, error)
}

type advisorService struct {
	cfg      *config.Config
	log      *logger.Logger
	catalog  *catalog.Catalog
	profiles *profile.Store
	engine   *engine.Engine
	market   MarketService
}

func NewAdvisorService(
	cfg *config.Config,
	log *logger.Logger,
	cat *catalog.Catalog,
	profiles *profile.Store,
	eng *engine.Engine,
	market MarketService,
) AdvisorService {
	return &advisorService{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		profiles: profiles,
		engine:   eng,
		market:   market,
	}
}

func (s *advisorService) Welcome(ctx context.Context) (*dto.ChatResponse, error) {
	user, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	reply := fmt.Sprintf("Hey %s! I'm your AI Financial Advisor.\n\n"+
		"I'm here to help you make informed investment decisions based on your profile:\n"+
		"- Risk Tolerance: %s\n- Investment Style: %s\n- Time Horizon: %s\n\n"+
		"Ask me about any stock, get personalized recommendations, or learn about investing strategies. What would you like to explore today?",
		user.Name, user.RiskTolerance, goalDisplay(user.InvestmentGoal), user.TimeHorizon)
	return &dto.ChatResponse{Reply: reply}, nil
}

func (s *advisorService) Chat(ctx context.Context, message string) (*dto.ChatResponse, error) {
	user, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(message)
	s.log.DebugContext(ctx, "advisor chat", logger.StringField("message", message))

	if mentions := s.catalog.Match(message); len(mentions) > 0 {
		return &dto.ChatResponse{Reply: s.stockReply(mentions[0], lower, user)}, nil
	}

	switch {
	case strings.Contains(lower, "diversif"):
		return &dto.ChatResponse{Reply: s.diversificationReply(user)}, nil
	case strings.Contains(lower, "beginner") || strings.Contains(lower, "start") || strings.Contains(lower, "new to"):
		return &dto.ChatResponse{Reply: s.beginnerReply(user)}, nil
	case strings.Contains(lower, "risk") && (strings.Contains(lower, "my") || strings.Contains(lower, "profile")):
		return &dto.ChatResponse{Reply: s.riskProfileReply(user)}, nil
	case strings.Contains(lower, "market") && (strings.Contains(lower, "today") || strings.Contains(lower, "now")):
		return &dto.ChatResponse{Reply: s.marketTodayReply()}, nil
	case strings.Contains(lower, "suggest") || strings.Contains(lower, "recommend") || strings.Contains(lower, "what should"):
		reply, err := s.suggestionsReply(ctx, user)
		if err != nil {
			return nil, err
		}
		return &dto.ChatResponse{Reply: reply}, nil
	}

	return &dto.ChatResponse{Reply: s.helpReply(user)}, nil
}

func (s *advisorService) stockReply(stock *dto.Stock, lower string, user *dto.UserProfile) string {
	rating := s.engine.ComputeRating(stock)
	prediction := s.engine.ComputePrediction(stock, rating)

	if strings.Contains(lower, "should i buy") || strings.Contains(lower, "good investment") || strings.Contains(lower, "worth buying") {
		rec := s.engine.ComputeRecommendation(stock, rating, prediction, user)
		return formatRecommendationReply(stock, rating, rec, user)
	}

	if strings.Contains(lower, "predict") || strings.Contains(lower, "forecast") || strings.Contains(lower, "outlook") {
		return formatPredictionReply(stock, prediction)
	}

	return formatStockInfoReply(stock, rating)
}

func formatRecommendationReply(stock *dto.Stock, rating *dto.StockRating, rec *dto.AdvisorRecommendation, user *dto.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on my analysis of %s (%s):\n\n", stock.Name, stock.Ticker)
	fmt.Fprintf(&b, "**AI Rating: %d/100** (%s)\n\n", rating.Overall, rating.Label)
	fmt.Fprintf(&b, "**Recommendation: %s** (%d%% confidence)\n\n", strings.ToUpper(string(rec.Action)), rec.Confidence)
	fmt.Fprintf(&b, "**Why:** %s\n\n", strings.Join(rec.Reasoning, " "))

	if len(rec.RiskWarnings) > 0 {
		b.WriteString("**Risk Warnings:**\n")
		for _, w := range rec.RiskWarnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("**For your profile:**\n")
	fmt.Fprintf(&b, "- Risk tolerance: %s\n", user.RiskTolerance)
	fmt.Fprintf(&b, "- Investment style: %s\n", goalDisplay(user.InvestmentGoal))
	fmt.Fprintf(&b, "- Time horizon: %s\n\n", user.TimeHorizon)
	b.WriteString("*Remember: This is AI-generated guidance for educational purposes, not financial advice.*")
	return b.String()
}

func formatPredictionReply(stock *dto.Stock, prediction *dto.StockPrediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's my outlook for %s (%s):\n\n", stock.Name, stock.Ticker)

	horizons := []struct {
		title string
		tf    dto.PredictionTimeframe
	}{
		{"Short-term", prediction.ShortTerm},
		{"Medium-term", prediction.MediumTerm},
		{"Long-term", prediction.LongTerm},
	}
	for _, h := range horizons {
		fmt.Fprintf(&b, "**%s (%s):**\n", h.title, h.tf.Period)
		fmt.Fprintf(&b, "- Direction: %s (%d%% confidence)\n", h.tf.Direction.Display(), h.tf.Confidence)
		fmt.Fprintf(&b, "- Target range: $%.2f - $%.2f\n\n", h.tf.PriceTarget.Low, h.tf.PriceTarget.High)
	}

	fmt.Fprintf(&b, "%s\n\n*%s*", prediction.AIInsight, prediction.Disclaimer)
	return b.String()
}

func formatStockInfoReply(stock *dto.Stock, rating *dto.StockRating) string {
	volatility := "Low volatility"
	if stock.Beta > 1.5 {
		volatility = "High volatility"
	} else if stock.Beta > 1 {
		volatility = "Moderate volatility"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I know about %s (%s):\n\n", stock.Name, stock.Ticker)
	fmt.Fprintf(&b, "**Current Price:** $%.2f (%s today)\n", stock.Price, utils.FormatPercentage(stock.ChangePercent))
	fmt.Fprintf(&b, "**AI Rating:** %d/100 (%s)\n", rating.Overall, rating.Label)
	fmt.Fprintf(&b, "**Sector:** %s\n", stock.Sector)
	fmt.Fprintf(&b, "**Market Cap:** %s\n", utils.FormatMarketCap(stock.MarketCap))
	fmt.Fprintf(&b, "**Beta:** %.2f (%s)\n\n", stock.Beta, volatility)
	fmt.Fprintf(&b, "%s\n\n", stock.Description)
	b.WriteString("Would you like me to provide predictions or a buy/hold recommendation for this stock?")
	return b.String()
}

func (s *advisorService) diversificationReply(user *dto.UserProfile) string {
	var allocation string
	switch user.RiskTolerance {
	case dto.RiskToleranceLow:
		allocation = "- Focus on 70% stable large-caps, 20% ETFs, 10% growth stocks"
	case dto.RiskToleranceMedium:
		allocation = "- Balance with 50% stable stocks, 30% growth, 20% ETFs"
	default:
		allocation = "- Can go 40% growth, 40% individual stocks, 20% speculative"
	}

	return fmt.Sprintf("Great question about diversification!\n\n"+
		"Diversification is one of the most important risk management strategies. Here's what I recommend based on your %s risk tolerance:\n\n"+
		"**Key principles:**\n"+
		"- Don't put more than 5-10%% in any single stock\n"+
		"- Spread across different sectors (tech, healthcare, finance, etc.)\n"+
		"- Consider ETFs like SPY or VTI for instant diversification\n"+
		"- Mix growth stocks with stable dividend payers\n\n"+
		"**For your profile (%s):**\n%s\n\n"+
		"Would you like specific stock suggestions for diversification?",
		user.RiskTolerance, goalDisplay(user.InvestmentGoal), allocation)
}

func (s *advisorService) beginnerReply(user *dto.UserProfile) string {
	return fmt.Sprintf("Welcome to investing! I'm excited to help you get started.\n\n"+
		"Here are my top tips for beginners:\n\n"+
		"**1. Start simple**\n"+
		"- Consider broad market ETFs like SPY (S&P 500) or VTI (Total Stock Market)\n"+
		"- These give you instant diversification with one purchase\n\n"+
		"**2. Invest regularly**\n"+
		"- Set up automatic investments (dollar-cost averaging)\n"+
		"- This removes emotion from the equation\n\n"+
		"**3. Think long-term**\n"+
		"- Don't panic during market dips\n"+
		"- Historically, markets recover and grow over time\n\n"+
		"**Based on your profile:**\n"+
		"Since you're a %s investor with %s risk tolerance, I'd suggest starting with blue-chip stocks like AAPL, MSFT, or broad ETFs.\n\n"+
		"What would you like to learn more about?",
		user.Experience, user.RiskTolerance)
}

func (s *advisorService) riskProfileReply(user *dto.UserProfile) string {
	var meaning, betaHint string
	switch user.RiskTolerance {
	case dto.RiskToleranceLow:
		meaning = "- You prefer stability over high returns\n- Stick to established companies and ETFs\n- Avoid highly volatile stocks (beta > 1.5)"
		betaHint = "below 1.0"
	case dto.RiskToleranceMedium:
		meaning = "- You can handle some volatility\n- Mix stable and growth stocks\n- Consider some exposure to emerging sectors"
		betaHint = "between 0.8 and 1.5"
	default:
		meaning = "- You're comfortable with volatility\n- Can pursue higher-risk opportunities\n- Still maintain some stable positions"
		betaHint = "up to 2.0 or higher for growth picks"
	}

	return fmt.Sprintf("Let me analyze your risk profile!\n\n"+
		"**Your Settings:**\n"+
		"- Risk Tolerance: %s\n- Investment Style: %s\n- Time Horizon: %s\n- Experience: %s\n\n"+
		"**What this means:**\n%s\n\n"+
		"**My recommendation:**\nBased on your profile, I'd suggest looking at stocks with beta %s.\n\n"+
		"Want me to suggest specific stocks that match your profile?",
		utils.CapitalizeSentence(string(user.RiskTolerance)), goalDisplay(user.InvestmentGoal),
		user.TimeHorizon, user.Experience, meaning, betaHint)
}

func (s *advisorService) marketTodayReply() string {
	movers := s.catalog.Trending(3)

	var up, down int
	var b strings.Builder
	b.WriteString("Here's what's happening in the market today!\n\n**Top Movers:**\n")
	for _, stock := range movers {
		fmt.Fprintf(&b, "- %s: $%.2f (%s)\n", stock.Ticker, stock.Price, utils.FormatPercentage(stock.ChangePercent))
		if stock.ChangePercent > 0 {
			up++
		} else if stock.ChangePercent < 0 {
			down++
		}
	}

	mood := "mixed"
	if up > len(movers)/2 {
		mood = "bullish"
	} else if down > len(movers)/2 {
		mood = "bearish"
	}

	fmt.Fprintf(&b, "\n**Quick Analysis:**\nThe market is showing %s sentiment today.\n\n", mood)
	b.WriteString("Would you like me to analyze any specific stock or sector?")
	return b.String()
}

func (s *advisorService) suggestionsReply(ctx context.Context, user *dto.UserProfile) (string, error) {
	stocks, ratings, err := s.market.RateUniverse(ctx)
	if err != nil {
		return "", err
	}

	type pick struct {
		stock  *dto.Stock
		rating *dto.StockRating
	}
	var picks []pick
	for i, stock := range stocks {
		rating := ratings[i]
		switch user.RiskTolerance {
		case dto.RiskToleranceLow:
			if stock.Beta >= 1.2 || rating.Overall < 55 {
				continue
			}
		case dto.RiskToleranceMedium:
			if stock.Beta >= 1.8 || rating.Overall < 50 {
				continue
			}
		}
		picks = append(picks, pick{stock: stock, rating: rating})
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].rating.Overall > picks[j].rating.Overall
	})
	if len(picks) > s.cfg.Advisor.TopPicks {
		picks = picks[:s.cfg.Advisor.TopPicks]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your %s risk tolerance and %s style, here are my top suggestions:\n\n",
		user.RiskTolerance, goalDisplay(user.InvestmentGoal))
	for i, p := range picks {
		fmt.Fprintf(&b, "**%d. %s (%s)**\n", i+1, p.stock.Name, p.stock.Ticker)
		fmt.Fprintf(&b, "   - Price: $%.2f\n", p.stock.Price)
		fmt.Fprintf(&b, "   - AI Rating: %d/100 (%s)\n", p.rating.Overall, p.rating.Label)
		fmt.Fprintf(&b, "   - Beta: %.2f\n", p.stock.Beta)
		fmt.Fprintf(&b, "   - Why: %s\n\n", p.rating.Explanation)
	}
	b.WriteString("*These suggestions are tailored to your profile. Always do your own research before investing.*\n\n")
	b.WriteString("Would you like detailed analysis on any of these?")
	return b.String(), nil
}

func (s *advisorService) helpReply(user *dto.UserProfile) string {
	suggestions := []string{
		"Ask about a specific stock (e.g., \"Tell me about AAPL\")",
		"Get buy/sell recommendations (e.g., \"Should I buy NVDA?\")",
		"Request predictions (e.g., \"What's the outlook for MSFT?\")",
		"Ask about diversification strategies",
		"Get personalized stock suggestions",
		"Learn about risk management",
	}

	var b strings.Builder
	b.WriteString("I'm your AI Financial Advisor!\n\nI can help you with:\n")
	for _, suggestion := range suggestions {
		fmt.Fprintf(&b, "- %s\n", suggestion)
	}
	fmt.Fprintf(&b, "\n**Quick tip for %s:**\n", user.Name)
	fmt.Fprintf(&b, "Based on your %s experience level and %s risk tolerance, I'll tailor my advice to match your investing style.\n\n",
		user.Experience, user.RiskTolerance)
	b.WriteString("What would you like to know?")
	return b.String()
}

func goalDisplay(goal dto.InvestmentGoal) string {
	return strings.ReplaceAll(string(goal), "-", " ")
}
