package httpapi

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"yieldd/internal/manager"
	"yieldd/internal/schema"
)

func TestMetricsEndpointExposesCounters(t *testing.T) {
	h := NewMux(readyService(schema.RevisionB))
	_ = postJSON(t, h, exampleBody)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	for _, name := range []string{"yieldd_http_requests_total", "yieldd_model_predictions_total", "yieldd_model_predicted_yield_mt_per_ha"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("metrics output missing %s", name)
		}
	}
	if !strings.Contains(string(body), `path="/v1/predict"`) {
		t.Fatalf("requests should be labelled by route pattern")
	}
}

func TestObservePredictionOutcomes(t *testing.T) {
	cases := []struct {
		err     error
		outcome string
	}{
		{nil, "success"},
		{manager.ErrModelUnavailable("m.json", "missing"), "unavailable"},
		{errors.New("other"), "error"},
	}
	for _, c := range cases {
		before := testutil.ToFloat64(predictionsTotal.WithLabelValues("T", c.outcome))
		observePrediction("T", 1.0, c.err)
		after := testutil.ToFloat64(predictionsTotal.WithLabelValues("T", c.outcome))
		if after-before != 1 {
			t.Fatalf("outcome %s: counter moved by %v", c.outcome, after-before)
		}
	}
}

func TestMetricsMiddleware_UnmatchedPathsShareOneLabel(t *testing.T) {
	h := NewMux(readyService(schema.RevisionA))
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404"))
	for _, p := range []string{"/no/such/page-8f3a", "/wp-admin/setup-77c1.php"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: status=%d", p, w.Code)
		}
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404"))
	if after-before != 2 {
		t.Fatalf("unmatched counter moved by %v, want 2", after-before)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, raw := range []string{"page-8f3a", "setup-77c1"} {
		if strings.Contains(body, raw) {
			t.Fatalf("raw request path %q leaked into metric labels", raw)
		}
	}
	if !strings.Contains(body, `yieldd_http_inflight_requests{path="unmatched"}`) {
		t.Fatalf("in-flight gauge should use the fixed label")
	}
}
