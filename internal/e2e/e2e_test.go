package e2e

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"yieldd/internal/schema"
	"yieldd/pkg/types"
)

const examplePayload = `{"year":2024,"season":"Maha","province":"Central","district":"Kandy","crop":"Paddy","soil_type":"Clay","irrigation":"Irrigated","area_sown_ha":100,"area_harvested_ha":95,"rainfall_mm":1500,"temperature_c":28,"fertilizer_kg_per_ha":220,"market_price_lkr_per_kg":120}`

// TestE2E_ProductionPerRevision runs the worked example through every
// revision: A multiplies by harvested area, B and C by sown area.
func TestE2E_ProductionPerRevision(t *testing.T) {
	cases := []struct {
		name  string
		rev   schema.Revision
		files map[string]string
		text  string
	}{
		{"full", schema.RevisionA, map[string]string{"full.yaml": "best_model_tuned.yaml"}, "Estimated Production: 427.5 metric tons"},
		{"basic", schema.RevisionB, map[string]string{"basic.json": "best_model.json"}, "Estimated Production: 450.0 metric tons"},
		{"basic-meta", schema.RevisionC, map[string]string{"basic.json": "crop_yield_model.json", "metadata.json": "model_metadata.json"}, "Estimated Production: 450.0 metric tons"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv, mgr := newServerForDir(t, createArtifactDir(t, c.files), c.rev)
			if !mgr.Ready() {
				t.Fatalf("model not ready: %s", mgr.LastError())
			}

			resp, body := httpGet(t, srv.URL+"/readyz")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("/readyz %d %s", resp.StatusCode, body)
			}

			resp, body = httpPostJSON(t, srv.URL+"/v1/predict", []byte(examplePayload))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("/v1/predict %d %s", resp.StatusCode, body)
			}
			var pr types.PredictResponse
			if err := json.Unmarshal(body, &pr); err != nil {
				t.Fatalf("json: %v body=%s", err, body)
			}
			if pr.YieldText != "Predicted Yield: 4.50 mt/ha" || pr.ProductionText != c.text {
				t.Fatalf("unexpected response: %+v", pr)
			}
			if pr.PredictionID == "" {
				t.Fatalf("missing prediction id")
			}

			resp, body = httpPostForm(t, srv.URL+"/", url.Values{"district": {"Kandy"}})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("form %d", resp.StatusCode)
			}
			if !strings.Contains(string(body), "Predicted Yield: 4.50 mt/ha") || !strings.Contains(string(body), c.text) {
				t.Fatalf("form result missing: %s", body)
			}

			resp, body = httpGet(t, srv.URL+"/status")
			var st types.StatusResponse
			if err := json.Unmarshal(body, &st); err != nil || resp.StatusCode != http.StatusOK {
				t.Fatalf("/status %d %v", resp.StatusCode, err)
			}
			if st.State != "ready" || st.PredictionsTotal != 2 {
				t.Fatalf("status = %+v", st)
			}
		})
	}
}

func TestE2E_MetadataCaption(t *testing.T) {
	dir := createArtifactDir(t, map[string]string{"basic.json": "crop_yield_model.json", "metadata.json": "model_metadata.json"})
	srv, _ := newServerForDir(t, dir, schema.RevisionC)
	_, body := httpGet(t, srv.URL+"/")
	want := "Model: Tuned GradientBoostingRegressor · RMSE: 0.4123 · R²: 0.8731"
	if !strings.Contains(string(body), want) {
		t.Fatalf("caption %q not on page", want)
	}

	partial := createArtifactDir(t, map[string]string{"basic.json": "crop_yield_model.json", "metadata_partial.json": "model_metadata.json"})
	srv, _ = newServerForDir(t, partial, schema.RevisionC)
	resp, body := httpGet(t, srv.URL+"/v1/model")
	var info types.ModelInfo
	if err := json.Unmarshal(body, &info); err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("/v1/model %d %v", resp.StatusCode, err)
	}
	if info.Caption != "Model: Unknown model · RMSE: 0.5000 · R²: n/a" {
		t.Fatalf("caption = %q", info.Caption)
	}
}

func TestE2E_MissingArtifactDisablesPrediction(t *testing.T) {
	srv, mgr := newServerForDir(t, t.TempDir(), schema.RevisionA)
	if mgr.Ready() {
		t.Fatalf("manager should not be ready without an artifact")
	}

	resp, body := httpGet(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "best_model_tuned.json") {
		t.Fatalf("warning should name the expected artifact: %s", body)
	}

	resp, body = httpPostForm(t, srv.URL+"/", url.Values{})
	if resp.StatusCode != http.StatusOK || strings.Contains(string(body), "Predicted Yield") {
		t.Fatalf("form must not predict without a model: %d", resp.StatusCode)
	}

	resp, body = httpPostJSON(t, srv.URL+"/v1/predict", []byte(examplePayload))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("/v1/predict %d %s", resp.StatusCode, body)
	}

	resp, _ = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("/readyz %d", resp.StatusCode)
	}
}

func TestE2E_IncompatibleArtifact(t *testing.T) {
	// a basic-schema model under the full-schema name
	dir := createArtifactDir(t, map[string]string{"basic.json": "best_model_tuned.json"})
	srv, mgr := newServerForDir(t, dir, schema.RevisionA)
	if mgr.Ready() {
		t.Fatalf("incompatible artifact must not be served")
	}
	resp, body := httpGet(t, srv.URL+"/status")
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.StatusCode != http.StatusOK || st.State != "error" || !strings.Contains(st.Error, "Area_Harvested_ha") {
		t.Fatalf("status = %+v", st)
	}
}

func TestE2E_InvalidInputRejected(t *testing.T) {
	dir := createArtifactDir(t, map[string]string{"basic.json": "best_model.json"})
	srv, _ := newServerForDir(t, dir, schema.RevisionB)

	resp, body := httpPostJSON(t, srv.URL+"/v1/predict", []byte(`{"year":1999,"season":"Maha","province":"Central","crop":"Paddy","soil_type":"Clay","irrigation":"Irrigated","area_sown_ha":100}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", resp.StatusCode, body)
	}

	resp, body = httpPostForm(t, srv.URL+"/", url.Values{"crop": {"Durian"}})
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Prediction error:") {
		t.Fatalf("form should show the error: %d", resp.StatusCode)
	}
}

func TestE2E_OverflowingProductionKeepsFormUsable(t *testing.T) {
	dir := createArtifactDir(t, map[string]string{"basic.json": "best_model.json"})
	srv, mgr := newServerForDir(t, dir, schema.RevisionB)

	huge := strings.Replace(examplePayload, `"area_sown_ha":100`, `"area_sown_ha":1e308`, 1)
	resp, body := httpPostJSON(t, srv.URL+"/v1/predict", []byte(huge))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", resp.StatusCode, body)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("json: %v body=%s", err, body)
	}
	if !strings.Contains(er.Error, "not a finite number") {
		t.Fatalf("error = %q", er.Error)
	}

	resp, body = httpPostForm(t, srv.URL+"/", url.Values{"area_sown_ha": {"1e308"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("form %d", resp.StatusCode)
	}
	page := string(body)
	if !strings.Contains(page, "Prediction error:") || !strings.Contains(page, "<form") {
		t.Fatalf("form should show the error and stay usable: %s", page)
	}
	if strings.Contains(page, "Predicted Yield") {
		t.Fatalf("no result expected for an overflowing estimate")
	}
	if !mgr.Ready() {
		t.Fatalf("model must stay loaded")
	}

	// the service keeps answering ordinary submissions
	resp, body = httpPostJSON(t, srv.URL+"/v1/predict", []byte(examplePayload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("follow-up /v1/predict %d %s", resp.StatusCode, body)
	}
}
