package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatStockInfo(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "Tell me about AAPL")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Apple")
	assert.Contains(t, resp.Reply, "AAPL")
	assert.Contains(t, resp.Reply, "AI Rating")
	assert.Contains(t, resp.Reply, "Beta")
}

func TestChatBuyIntent(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "Should I buy NVDA?")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Recommendation:")
	assert.Contains(t, resp.Reply, "confidence")
	assert.Contains(t, resp.Reply, "For your profile")
}

func TestChatPredictionIntent(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "What's the outlook for MSFT?")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Short-term (1-7 days)")
	assert.Contains(t, resp.Reply, "Medium-term (1-3 months)")
	assert.Contains(t, resp.Reply, "Long-term (1+ year)")
	assert.Contains(t, resp.Reply, "Target range")
}

func TestChatDiversification(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "How should I diversify my portfolio?")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "diversification")
	assert.Contains(t, resp.Reply, "medium risk tolerance")
}

func TestChatRiskProfile(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "Analyze my risk profile")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Your Settings")
	assert.Contains(t, resp.Reply, "Risk Tolerance")
}

func TestChatMarketToday(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "How is the market today?")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Top Movers")
	assert.Contains(t, resp.Reply, "sentiment today")
}

func TestChatSuggestions(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "What should I invest in? Any suggestions?")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "top suggestions")
	assert.Contains(t, resp.Reply, "AI Rating")
}

func TestChatFallbackHelp(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Chat(context.Background(), "hello there")
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "I can help you with")
	assert.Contains(t, resp.Reply, "Quick tip")
}

func TestWelcomeUsesProfile(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdvisorService.Welcome(context.Background())
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Hey Investor")
	assert.Contains(t, resp.Reply, "Risk Tolerance: medium")
}
