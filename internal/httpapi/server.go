package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yieldd/internal/manager"
	"yieldd/internal/schema"
	"yieldd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Predict(ctx context.Context, in schema.Input) (manager.Result, error)
	Revision() schema.Revision
	Info() types.ModelInfo
	Status() types.StatusResponse
	Warning() string
	Caption() string
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Get("/", handleFormPage(svc))
	r.Post("/", handleFormSubmit(svc))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/predict", handlePredict(svc))
		r.Get("/predict/template", handlePredictTemplate(svc))
		r.Get("/model", handleModel(svc))
	})

	r.Get("/status", handleStatus(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if swaggerEnabled {
		MountSwagger(r)
	}
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// handleModel serves GET /v1/model.
//
// @Summary      Loaded model
// @Description  Model name, metadata caption, expected columns and load warning.
// @Tags         model
// @Produce      json
// @Success      200  {object}  types.ModelInfo
// @Router       /v1/model [get]
func handleModel(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { writeJSON(w, svc.Info()) }
}

// handlePredictTemplate serves GET /v1/predict/template.
//
// @Summary      Default request
// @Description  The pre-filled form values for the configured revision.
// @Tags         predict
// @Produce      json
// @Success      200  {object}  types.PredictRequest
// @Router       /v1/predict/template [get]
func handlePredictTemplate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { writeJSON(w, defaultRequest(svc.Revision())) }
}

// handleStatus serves GET /status.
//
// @Summary      Service status
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func handleStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { writeJSON(w, svc.Status()) }
}
