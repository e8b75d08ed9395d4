package cmd

import (
	"stock-advisor/config"
	"stock-advisor/internal/catalog"
	"stock-advisor/internal/engine"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AppDependency holds the shared infrastructure handed to commands.
type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *validator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	catalog   *catalog.Catalog
	profiles  *profile.Store
	engine    *engine.Engine
}

func NewAppDependency() (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(log, cfg.Catalog.HistoryDays)
	if err != nil {
		return nil, err
	}

	profiles, err := profile.NewStore(cfg.Profile.DBPath, log)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: validator.New(),
		echo:      e,
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		catalog:   cat,
		profiles:  profiles,
		engine:    engine.New(log),
	}, nil
}

func (d *AppDependency) Close() {
	if err := d.profiles.Close(); err != nil {
		d.log.Error("close profile store", logger.ErrorField(err))
	}
	_ = d.log.Sync()
}
