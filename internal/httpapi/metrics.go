package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "yieldd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "yieldd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	httpInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "yieldd",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "In-flight HTTP requests",
		},
		[]string{"path"},
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "yieldd",
			Subsystem: "model",
			Name:      "predictions_total",
			Help:      "Prediction submissions by revision and outcome",
		},
		[]string{"revision", "outcome"},
	)

	predictedYield = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "yieldd",
			Subsystem: "model",
			Name:      "predicted_yield_mt_per_ha",
			Help:      "Distribution of predicted yields",
			Buckets:   []float64{0.5, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		},
		[]string{"revision"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpInflight, predictionsTotal, predictedYield)
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware instruments requests for Prometheus
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		// chi has not matched the route yet, so the raw path must not become
		// a label value here.
		httpInflight.WithLabelValues(unmatchedRoute).Inc()
		defer httpInflight.WithLabelValues(unmatchedRoute).Dec()
		next.ServeHTTP(sr, r)
		// The route pattern is only known once chi has matched the request.
		path := routeLabel(r)
		statusLabel := strconv.Itoa(sr.status)
		httpRequestsTotal.WithLabelValues(path, r.Method, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(path, r.Method, statusLabel).Observe(time.Since(start).Seconds())
	})
}

// unmatchedRoute labels requests without a resolved chi route pattern.
const unmatchedRoute = "unmatched"

// routeLabel returns the chi route pattern if available, otherwise
// unmatchedRoute, keeping label cardinality bounded by the route table.
func routeLabel(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// observePrediction records one submission outcome.
func observePrediction(revision string, yield float64, err error) {
	predictionsTotal.WithLabelValues(revision, outcomeFor(err)).Inc()
	if err == nil {
		predictedYield.WithLabelValues(revision).Observe(yield)
	}
}
