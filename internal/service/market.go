package service

import (
	"context"
	"errors"
	"fmt"

	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/internal/dto"
	"stock-advisor/internal/engine"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/utils"
)

// ErrStockNotFound is returned for tickers outside the catalog.
var ErrStockNotFound = errors.New("stock not found")

type MarketService interface {
	ListStocks(ctx context.Context) ([]dto.StockSummary, error)
	Trending(ctx context.Context) ([]dto.StockSummary, error)
	GetStock(ctx context.Context, ticker string) (*dto.Stock, error)
	GetDetail(ctx context.Context, ticker string) (*dto.StockDetail, error)
	GetRating(ctx context.Context, ticker string) (*dto.StockRating, error)
	GetPrediction(ctx context.Context, ticker string) (*dto.StockPrediction, error)
	GetRecommendation(ctx context.Context, ticker string) (*dto.AdvisorRecommendation, error)
	RateUniverse(ctx context.Context) ([]*dto.Stock, []*dto.StockRating, error)
	FlushRatings()
}

type marketService struct {
	cfg      *config.Config
	log      *logger.Logger
	catalog  *catalog.Catalog
	profiles *profile.Store
	engine   *engine.Engine
	cache    cache.Cache
}

func NewMarketService(
	cfg *config.Config,
	log *logger.Logger,
	cat *catalog.Catalog,
	profiles *profile.Store,
	eng *engine.Engine,
	inmemoryCache cache.Cache,
) MarketService {
	return &marketService{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		profiles: profiles,
		engine:   eng,
		cache:    inmemoryCache,
	}
}

func ratingCacheKey(ticker string) string {
	return "rating:" + ticker
}

// ratingFor returns the cached rating for a stock, computing it on a miss.
func (s *marketService) ratingFor(stock *dto.Stock) *dto.StockRating {
	if rating, ok := cache.GetTyped[*dto.StockRating](s.cache, ratingCacheKey(stock.Ticker)); ok {
		return rating
	}
	rating := s.engine.ComputeRating(stock)
	s.cache.Set(ratingCacheKey(stock.Ticker), rating, s.cfg.Cache.DefaultExpiration)
	return rating
}

// RateUniverse rates the whole catalog, fanning the misses out concurrently.
func (s *marketService) RateUniverse(ctx context.Context) ([]*dto.Stock, []*dto.StockRating, error) {
	stocks := s.catalog.All()
	ratings := make([]*dto.StockRating, len(stocks))

	var missed []*dto.Stock
	var missedIdx []int
	for i, stock := range stocks {
		if rating, ok := cache.GetTyped[*dto.StockRating](s.cache, ratingCacheKey(stock.Ticker)); ok {
			ratings[i] = rating
			continue
		}
		missed = append(missed, stock)
		missedIdx = append(missedIdx, i)
	}

	if len(missed) > 0 {
		computed, err := s.engine.RateAll(ctx, missed)
		if err != nil {
			return nil, nil, fmt.Errorf("rate catalog: %w", err)
		}
		for j, rating := range computed {
			ratings[missedIdx[j]] = rating
			s.cache.Set(ratingCacheKey(missed[j].Ticker), rating, s.cfg.Cache.DefaultExpiration)
		}
	}

	return stocks, ratings, nil
}

func (s *marketService) ListStocks(ctx context.Context) ([]dto.StockSummary, error) {
	stocks, ratings, err := s.RateUniverse(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StockSummary, 0, len(stocks))
	for i, stock := range stocks {
		summaries = append(summaries, toSummary(stock, ratings[i]))
	}
	return summaries, nil
}

func (s *marketService) Trending(ctx context.Context) ([]dto.StockSummary, error) {
	trending := s.catalog.Trending(s.cfg.Catalog.TrendingSize)

	summaries := make([]dto.StockSummary, 0, len(trending))
	for _, stock := range trending {
		summaries = append(summaries, toSummary(stock, s.ratingFor(stock)))
	}
	return summaries, nil
}

func (s *marketService) GetStock(ctx context.Context, ticker string) (*dto.Stock, error) {
	stock, ok := s.catalog.Get(ticker)
	if !ok {
		return nil, ErrStockNotFound
	}
	return stock, nil
}

func (s *marketService) GetDetail(ctx context.Context, ticker string) (*dto.StockDetail, error) {
	stock, ok := s.catalog.Get(ticker)
	if !ok {
		return nil, ErrStockNotFound
	}

	rating := s.ratingFor(stock)
	return &dto.StockDetail{
		Stock:      stock,
		Rating:     rating,
		Prediction: s.engine.ComputePrediction(stock, rating),
	}, nil
}

func (s *marketService) GetRating(ctx context.Context, ticker string) (*dto.StockRating, error) {
	stock, ok := s.catalog.Get(ticker)
	if !ok {
		return nil, ErrStockNotFound
	}
	return s.ratingFor(stock), nil
}

func (s *marketService) GetPrediction(ctx context.Context, ticker string) (*dto.StockPrediction, error) {
	stock, ok := s.catalog.Get(ticker)
	if !ok {
		return nil, ErrStockNotFound
	}
	return s.engine.ComputePrediction(stock, s.ratingFor(stock)), nil
}

func (s *marketService) GetRecommendation(ctx context.Context, ticker string) (*dto.AdvisorRecommendation, error) {
	stock, ok := s.catalog.Get(ticker)
	if !ok {
		return nil, ErrStockNotFound
	}

	userProfile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	rating := s.ratingFor(stock)
	prediction := s.engine.ComputePrediction(stock, rating)
	return s.engine.ComputeRecommendation(stock, rating, prediction, userProfile), nil
}

// FlushRatings drops all cached ratings. Called after a simulator tick.
func (s *marketService) FlushRatings() {
	s.cache.Flush()
}

func toSummary(stock *dto.Stock, rating *dto.StockRating) dto.StockSummary {
	return dto.StockSummary{
		Ticker:        stock.Ticker,
		Name:          stock.Name,
		Sector:        stock.Sector,
		Price:         stock.Price,
		ChangePercent: stock.ChangePercent,
		MarketCap:     utils.FormatMarketCap(stock.MarketCap),
		Rating:        rating.Overall,
		RatingLabel:   rating.Label,
		RatingColor:   rating.Color,
	}
}
