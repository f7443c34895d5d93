package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"yieldd/internal/schema"
	"yieldd/pkg/types"
)

// handlePredict serves POST /v1/predict.
//
// @Summary      Predict crop yield
// @Description  Builds the feature row for the configured revision and returns the predicted yield and production estimate.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.PredictRequest  true  "Form values"
// @Success      200      {object}  types.PredictResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /v1/predict [post]
func handlePredict(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.PredictRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			// Oversized bodies also land here; report them as a plain 400.
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		in := toInput(req)
		logDebugInput(r, lvl, in)

		rev := svc.Revision()
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		res, err := svc.Predict(ctx, in)
		observePrediction(rev.String(), res.Yield, err)
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			status := statusFor(err)
			writeJSONError(w, status, err.Error())
			logPredictEnd(r, lvl, status, start, "", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.PredictResponse{
			PredictionID:     res.PredictionID,
			Revision:         res.Revision.String(),
			YieldMTPerHa:     res.Yield,
			ProductionMT:     res.Production,
			ProductionAreaHa: res.Area,
			YieldText:        formatYield(res.Yield),
			ProductionText:   formatProduction(res.Production),
			Caption:          res.Caption,
		})
		logPredictEnd(r, lvl, http.StatusOK, start, res.PredictionID, nil)
	}
}

// defaultRequest exposes the pre-filled form values as a JSON template.
func defaultRequest(rev schema.Revision) types.PredictRequest {
	in := schema.DefaultInput()
	req := types.PredictRequest{
		Year:                in.Year,
		Season:              in.Season,
		Province:            in.Province,
		District:            in.District,
		Crop:                in.Crop,
		SoilType:            in.SoilType,
		Irrigation:          in.Irrigation,
		AreaSownHa:          in.AreaSownHa,
		RainfallMM:          in.RainfallMM,
		TemperatureC:        in.TemperatureC,
		FertilizerKgPerHa:   in.FertilizerKgPerHa,
		MarketPriceLKRPerKg: in.MarketPriceLKRPerKg,
	}
	if rev.HasHarvestedArea() {
		req.AreaHarvestedHa = in.AreaHarvestedHa
		req.ProductionMT = in.ProductionMT
	}
	return req
}
