package engine

import (
	"context"
	"runtime"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Engine derives ratings, predictions and personalized recommendations from
// catalog stocks. All computations are pure functions of their inputs; the
// engine itself holds no state beyond its calculators and a logger.
type Engine struct {
	log         *logger.Logger
	calculators []componentCalculator
}

func New(log *logger.Logger) *Engine {
	return &Engine{
		log: log,
		calculators: []componentCalculator{
			technicalTrend{},
			financialHealth{},
			volatilityScore{},
			marketSentiment{},
			growthPotential{},
		},
	}
}

// RateAll rates every stock concurrently. Each computation is independent, so
// the fan-out needs no synchronization beyond the result slice indices.
func (e *Engine) RateAll(ctx context.Context, stocks []*dto.Stock) ([]*dto.StockRating, error) {
	ratings := make([]*dto.StockRating, len(stocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, stock := range stocks {
		i, stock := i, stock
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ratings[i] = e.ComputeRating(stock)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ratings, nil
}
