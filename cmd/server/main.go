package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/navbearing/pkg/http"
	"github.com/lintang-b-s/navbearing/pkg/http/server"
	"github.com/lintang-b-s/navbearing/pkg/http/usecases"
	"github.com/lintang-b-s/navbearing/pkg/logger"
	"github.com/lintang-b-s/navbearing/pkg/metrics"
	"github.com/lintang-b-s/navbearing/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "enable the global token bucket rate limiter")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	http.SetDefaults()

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	bearingService := usecases.NewBearingService(logger, m, viper.GetInt("BATCH_WORKERS"), viper.GetInt("BATCH_MAX_PAIRS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api, err := http.NewServer(logger).Use(ctx,
		logger, *useRateLimit, bearingService, m, reg)
	if err != nil {
		logger.Fatal("failed starting server", zap.Error(err))
	}

	go func() {
		signal := server.GracefulShutdown()
		logger.Info("navbearing server stopping", zap.String("signal", signal.String()))
		cleanup()
	}()

	if err := api.Wait(); err != nil {
		logger.Error("navbearing server stopped with error", zap.Error(err))
		return
	}
	logger.Info("navbearing server stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
