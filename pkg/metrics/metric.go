package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// prometheus metrics
type Metrics struct {
	BearingQueryCount  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	responseStatusCode *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BearingQueryCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navbearing",
			Name:      "bearing_query_count",
			Help:      "The total number of bearings computed",
		}, []string{"kind"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "navbearing",
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}, // 0.001 = 1ms
		}, []string{"method", "path"}),
		responseStatusCode: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "navbearing",
				Name:      "response_status_code",
				Help:      "The status code of http response",
			}, []string{"status", "method", "path"},
		),
	}
	reg.MustRegister(m.BearingQueryCount, m.httpDuration, m.responseStatusCode)
	return m
}

// AddBearings. count n bearings of the given kind (single, batch, polyline, stream).
func (m *Metrics) AddBearings(kind string, n int) {
	if m == nil {
		return
	}
	m.BearingQueryCount.WithLabelValues(kind).Add(float64(n))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap. lets http.ResponseController reach the underlying writer (websocket hijack).
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// UnmatchedRoute. path label for requests no route matched, keeps the series count bounded.
const UnmatchedRoute = "unmatched"

// PromeHttpMiddleware. route(r) returns the path label for r, UnmatchedRoute for unknown paths.
func (m *Metrics) PromeHttpMiddleware(route func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := route(r)
			rw := newResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(rw, r)

			m.responseStatusCode.With(prometheus.Labels{"status": strconv.Itoa(rw.statusCode), "method": r.Method, "path": path}).Inc()
			m.httpDuration.With(prometheus.Labels{"method": r.Method, "path": path}).Observe(time.Since(start).Seconds())
		})
	}
}
