package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/navbearing/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/navbearing/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/navbearing/pkg/http/server"
	"github.com/lintang-b-s/navbearing/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Handler. full middleware chain in front of the bearing routes.
func (api *API) Handler(
	bearingService controllers.BearingService,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	rateLimit RateLimit,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	root := router_helper.NewRouteGroup(router, "/")
	root.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	group := root.Group("/api")

	bearingRoutes := controllers.New(bearingService, api.log)

	bearingRoutes.Routes(group)

	// every route is static, so a matched request path is its route pattern
	routeLabel := func(r *http.Request) string {
		if handle, _, _ := router.Lookup(r.Method, r.URL.Path); handle != nil {
			return r.URL.Path
		}
		return metrics.UnmatchedRoute
	}

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		middleware.RealIP, middleware.Heartbeat("/healthz"), Logger(api.log), m.PromeHttpMiddleware(routeLabel)}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rate.NewLimiter(rate.Limit(rateLimit.RPS), rateLimit.Burst)))
	}

	return alice.New(mwChain...).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	handler http.Handler,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, handler, config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}
