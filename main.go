package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"os-visualizer/api"
	"os-visualizer/config"
	"os-visualizer/internal/cache"
	"os-visualizer/internal/metrics"
)

func main() {
	logger, _ := zap.NewProduction()

	schedulerConfig, err := config.Load(".env", "./")
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if schedulerConfig.LogDevelopment {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	recorder := metrics.NewRecorder()
	if host := schedulerConfig.Metrics.GraphiteHost; host != "" {
		if err := recorder.ExportGraphite(host, schedulerConfig.Metrics.Prefix, schedulerConfig.Metrics.FlushInterval); err != nil {
			logger.Fatal("starting graphite exporter", zap.String("host", host), zap.Error(err))
		}
		logger.Info("exporting metrics to graphite", zap.String("host", host))
	}

	var scheduleCache *cache.ScheduleCache
	if schedulerConfig.Cache.Enabled {
		scheduleCache, err = cache.NewScheduleCache(schedulerConfig.Cache.NumCounters, schedulerConfig.Cache.MaxCost)
		if err != nil {
			logger.Fatal("initializing schedule cache", zap.Error(err))
		}
		defer scheduleCache.Close()
	}

	handler := api.NewSchedulerHandlerImpl(schedulerConfig, logger, scheduleCache, recorder)
	app := api.NewApp(schedulerConfig, logger, handler)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", schedulerConfig.Port)
	logger.Info("scheduler api listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}
