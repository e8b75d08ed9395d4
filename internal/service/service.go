package service

import (
	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/internal/engine"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"
)

type Service struct {
	MarketService    MarketService
	AdvisorService   AdvisorService
	ProfileService   ProfileService
	SimulatorService SimulatorService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	cat *catalog.Catalog,
	profiles *profile.Store,
	eng *engine.Engine,
	inmemoryCache cache.Cache,
) *Service {
	marketService := NewMarketService(cfg, log, cat, profiles, eng, inmemoryCache)
	advisorService := NewAdvisorService(cfg, log, cat, profiles, eng, marketService)
	profileService := NewProfileService(log, profiles)
	simulatorService := NewSimulatorService(cfg, log, cat, marketService)

	return &Service{
		MarketService:    marketService,
		AdvisorService:   advisorService,
		ProfileService:   profileService,
		SimulatorService: simulatorService,
	}
}
