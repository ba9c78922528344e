package http

import (
	"context"
	"errors"

	http_router "github.com/lintang-b-s/navbearing/pkg/http/router"
	"github.com/lintang-b-s/navbearing/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navbearing/pkg/http/server"
	"github.com/lintang-b-s/navbearing/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func SetDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("BATCH_WORKERS", 8)
	viper.SetDefault("BATCH_MAX_PAIRS", 10000)
}

// Use. start the API in the background, Wait returns its error once ctx is canceled.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	bearingService controllers.BearingService,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	SetDefaults()

	config := http_server.Config{
		Port:              viper.GetInt("API_PORT"),
		Timeout:           viper.GetDuration("API_TIMEOUT"),
		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT"),
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
	}

	api := http_router.NewAPI(log)
	handler := api.Handler(bearingService, m, gatherer, http_router.RateLimit{
		Enabled: useRateLimit,
		RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:   viper.GetInt("RATE_LIMIT_BURST"),
	})

	g, gctx := errgroup.WithContext(ctx)
	s.g = g

	g.Go(func() error {
		return api.Run(gctx, config, handler)
	})

	return s, nil
}

// Wait. error of the API goroutine, context cancellation is a clean stop.
func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	err := s.g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
