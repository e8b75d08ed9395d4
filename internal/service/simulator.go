package service

import (
	"fmt"
	"time"

	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/utils"

	"github.com/robfig/cron/v3"
)

// SimulatorService advances the mocked market on a schedule so the catalog
// does not sit frozen between sessions. Each tick appends one synthetic
// trading day and drops the cached ratings.
type SimulatorService interface {
	Start() error
	Stop()
}

type simulatorService struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Catalog
	market  MarketService
	cron    *cron.Cron
}

func NewSimulatorService(cfg *config.Config, log *logger.Logger, cat *catalog.Catalog, market MarketService) SimulatorService {
	return &simulatorService{
		cfg:     cfg,
		log:     log,
		catalog: cat,
		market:  market,
		cron:    cron.New(),
	}
}

func (s *simulatorService) Start() error {
	if !s.cfg.Simulator.Enabled {
		s.log.Info("market simulator disabled")
		return nil
	}

	// A panic inside a tick must not kill the cron goroutine.
	if _, err := s.cron.AddFunc(s.cfg.Simulator.CronSpec, func() { utils.GoSafe(s.tick) }); err != nil {
		return fmt.Errorf("schedule simulator tick: %w", err)
	}

	s.cron.Start()
	s.log.Info("market simulator started", logger.StringField("cron_spec", s.cfg.Simulator.CronSpec))
	return nil
}

func (s *simulatorService) tick() {
	start := time.Now()
	s.catalog.Advance(start)
	s.market.FlushRatings()
	s.log.Info("simulator tick complete", logger.Field("duration", time.Since(start)))
}

func (s *simulatorService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("market simulator stopped")
}
