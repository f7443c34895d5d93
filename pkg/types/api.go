package types

// PredictRequest carries the form values for one prediction.
type PredictRequest struct {
	// Harvest year.
	// example: 2024
	Year int `json:"year" example:"2024"`
	// Cultivation season: Maha or Yala.
	// example: Maha
	Season string `json:"season" example:"Maha"`
	// Province name.
	// example: Central
	Province string `json:"province" example:"Central"`
	// Free-text district name.
	// example: Kandy
	District string `json:"district" example:"Kandy"`
	// Crop name.
	// example: Paddy
	Crop string `json:"crop" example:"Paddy"`
	// Soil type.
	// example: Clay
	SoilType string `json:"soil_type" example:"Clay"`
	// Irrigated or Rainfed.
	// example: Irrigated
	Irrigation string `json:"irrigation" example:"Irrigated"`
	// Sown area in hectares.
	// example: 100
	AreaSownHa float64 `json:"area_sown_ha" example:"100"`
	// Harvested area in hectares (revision A only).
	// example: 95
	AreaHarvestedHa float64 `json:"area_harvested_ha,omitempty" example:"95"`
	// Season rainfall in millimetres.
	// example: 1500
	RainfallMM float64 `json:"rainfall_mm" example:"1500"`
	// Mean temperature in degrees Celsius.
	// example: 28
	TemperatureC float64 `json:"temperature_c" example:"28"`
	// Fertilizer applied in kg per hectare.
	// example: 220
	FertilizerKgPerHa float64 `json:"fertilizer_kg_per_ha" example:"220"`
	// Market price in LKR per kg.
	// example: 120
	MarketPriceLKRPerKg float64 `json:"market_price_lkr_per_kg" example:"120"`
	// Production in metric tons if already known (revision A only).
	// example: 0
	ProductionMT float64 `json:"production_mt,omitempty" example:"0"`
}

// PredictResponse is returned by POST /v1/predict.
type PredictResponse struct {
	// Identifier of this prediction, for log correlation.
	// example: 4f1c2f0e-3b0c-4c55-9b1a-6c7f3f1b2d10
	PredictionID string `json:"prediction_id" example:"4f1c2f0e-3b0c-4c55-9b1a-6c7f3f1b2d10"`
	// Feature schema revision used.
	// example: A
	Revision string `json:"revision" example:"A"`
	// Predicted yield in metric tons per hectare.
	// example: 4.5
	YieldMTPerHa float64 `json:"yield_mt_per_ha" example:"4.5"`
	// Estimated production in metric tons.
	// example: 427.5
	ProductionMT float64 `json:"production_mt" example:"427.5"`
	// Area the yield was multiplied by.
	// example: 95
	ProductionAreaHa float64 `json:"production_area_ha" example:"95"`
	// Yield formatted with two decimals.
	// example: Predicted Yield: 4.50 mt/ha
	YieldText string `json:"yield_text" example:"Predicted Yield: 4.50 mt/ha"`
	// Production formatted with one decimal.
	// example: Estimated Production: 427.5 metric tons
	ProductionText string `json:"production_text" example:"Estimated Production: 427.5 metric tons"`
	// Model caption.
	// example: Model: Tuned GradientBoostingRegressor
	Caption string `json:"caption" example:"Model: Tuned GradientBoostingRegressor"`
}

// ModelInfo describes the loaded model for GET /v1/model.
type ModelInfo struct {
	// Whether predictions are available.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
	// Feature schema revision.
	// example: C
	Revision string `json:"revision" example:"C"`
	// Artifact file path.
	// example: /opt/yieldd/crop_yield_model.json
	ArtifactPath string `json:"artifact_path" example:"/opt/yieldd/crop_yield_model.json"`
	// Model display name.
	// example: Tuned GradientBoostingRegressor
	Name string `json:"name" example:"Tuned GradientBoostingRegressor"`
	// Predicted quantity.
	// example: Yield_mt_per_ha
	Target string `json:"target,omitempty" example:"Yield_mt_per_ha"`
	// RMSE from metadata, or a placeholder.
	// example: 0.4123
	RMSE string `json:"rmse" example:"0.4123"`
	// R² from metadata, or a placeholder.
	// example: 0.8731
	R2 string `json:"r2" example:"0.8731"`
	// Caption line shown under the form.
	Caption string `json:"caption"`
	// Columns the model expects.
	Columns []string `json:"columns"`
	// Load warning when the model is unavailable.
	Warning string `json:"warning,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Manager state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Feature schema revision.
	// example: A
	Revision string `json:"revision" example:"A"`
	// Artifact file path.
	ArtifactPath string `json:"artifact_path"`
	// Metadata side-car path, when the revision uses one.
	MetadataPath string `json:"metadata_path,omitempty"`
	// Load error, if any.
	Error string `json:"error,omitempty"`
	// Time the artifact finished loading (unix seconds).
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty" example:"1700000000"`
	// Successful predictions since start.
	// example: 12
	PredictionsTotal uint64 `json:"predictions_total" example:"12"`
	// Failed predictions since start.
	// example: 1
	PredictionErrorsTotal uint64 `json:"prediction_errors_total" example:"1"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
