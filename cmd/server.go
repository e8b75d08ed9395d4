package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	delivery "stock-advisor/internal/delivery/http"
	"stock-advisor/internal/service"
	"stock-advisor/pkg/logger"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		dep, err := NewAppDependency()
		if err != nil {
			return err
		}
		defer dep.Close()

		return runServer(dep)
	},
}

func runServer(dep *AppDependency) error {
	svc := service.NewService(dep.cfg, dep.log, dep.catalog, dep.profiles, dep.engine, dep.cache)

	delivery.SetupRoutes(dep.echo, dep.cfg, dep.log, dep.validator, svc)

	if err := svc.SimulatorService.Start(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", dep.cfg.API.Port)
		dep.log.Info("http server listening", logger.StringField("addr", addr))
		if err := dep.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		svc.SimulatorService.Stop()
		return err
	case sig := <-quit:
		dep.log.Info("shutting down", logger.StringField("signal", sig.String()))
	}

	svc.SimulatorService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := dep.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	dep.log.Info("server stopped")
	return nil
}
