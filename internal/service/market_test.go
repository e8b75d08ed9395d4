package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/internal/engine"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache:   config.Cache{DefaultExpiration: time.Minute, CleanupInterval: time.Minute},
		Catalog: config.Catalog{HistoryDays: 260, TrendingSize: 5},
		Advisor: config.Advisor{TopPicks: 3},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	log := logger.NewNop()
	cfg := testConfig()

	cat, err := catalog.New(log, cfg.Catalog.HistoryDays)
	require.NoError(t, err)

	profiles, err := profile.NewStore(filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { profiles.Close() })

	c := cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)
	return NewService(cfg, log, cat, profiles, engine.New(log), c)
}

func TestListStocks(t *testing.T) {
	svc := newTestService(t)

	summaries, err := svc.MarketService.ListStocks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, summaries)

	for _, s := range summaries {
		assert.NotEmpty(t, s.Ticker)
		assert.NotEmpty(t, s.RatingLabel)
		assert.NotEmpty(t, s.MarketCap)
		assert.GreaterOrEqual(t, s.Rating, 0)
		assert.LessOrEqual(t, s.Rating, 100)
	}
}

func TestTrendingRespectsConfiguredSize(t *testing.T) {
	svc := newTestService(t)

	summaries, err := svc.MarketService.Trending(context.Background())
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}

func TestGetStockUnknownTicker(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.MarketService.GetStock(ctx, "ZZZZ")
	assert.ErrorIs(t, err, ErrStockNotFound)

	_, err = svc.MarketService.GetRating(ctx, "ZZZZ")
	assert.ErrorIs(t, err, ErrStockNotFound)

	_, err = svc.MarketService.GetPrediction(ctx, "ZZZZ")
	assert.ErrorIs(t, err, ErrStockNotFound)

	_, err = svc.MarketService.GetRecommendation(ctx, "ZZZZ")
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestGetDetailBundlesAnalysis(t *testing.T) {
	svc := newTestService(t)

	detail, err := svc.MarketService.GetDetail(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", detail.Stock.Ticker)
	require.NotNil(t, detail.Rating)
	require.NotNil(t, detail.Prediction)
	assert.NotEmpty(t, detail.Prediction.ShortTerm.Period)
}

func TestRatingCachedAcrossCalls(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.MarketService.GetRating(ctx, "MSFT")
	require.NoError(t, err)

	second, err := svc.MarketService.GetRating(ctx, "MSFT")
	require.NoError(t, err)

	// Cache hit returns the identical value, timestamp included.
	assert.Equal(t, first, second)
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
}

func TestFlushRatingsInvalidatesCache(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.MarketService.GetRating(ctx, "MSFT")
	require.NoError(t, err)

	svc.MarketService.FlushRatings()

	second, err := svc.MarketService.GetRating(ctx, "MSFT")
	require.NoError(t, err)

	// Same stock data recomputes to the same score with a fresh timestamp.
	assert.Equal(t, first.Overall, second.Overall)
	assert.False(t, second.LastUpdated.Before(first.LastUpdated))
}

func TestGetRecommendationUsesStoredProfile(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.MarketService.GetRecommendation(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.Action)
	assert.NotEmpty(t, rec.Reasoning)
	assert.GreaterOrEqual(t, rec.Confidence, 30)
	assert.LessOrEqual(t, rec.Confidence, 85)
	assert.NotEmpty(t, rec.Disclaimer)
}

func TestRateUniverseCoversCatalog(t *testing.T) {
	svc := newTestService(t)

	stocks, ratings, err := svc.MarketService.RateUniverse(context.Background())
	require.NoError(t, err)
	require.Len(t, ratings, len(stocks))

	for i, rating := range ratings {
		require.NotNil(t, rating, stocks[i].Ticker)
	}
}
