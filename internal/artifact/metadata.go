package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Placeholders shown when a metadata field is absent.
const (
	PlaceholderModelName = "Unknown model"
	PlaceholderMetric    = "n/a"
)

// DefaultCaption is shown by revisions without a metadata side-car.
const DefaultCaption = "Model: Tuned GradientBoostingRegressor"

// Metadata is the optional side-car describing a trained model. It is used
// for display only.
type Metadata struct {
	ModelName string   `json:"model_name,omitempty"`
	RMSE      *float64 `json:"rmse,omitempty"`
	R2        *float64 `json:"r2,omitempty"`
	TrainedAt string   `json:"trained_at,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// LoadMetadata reads the side-car at path. A missing file yields zero
// Metadata and no error; an unreadable or malformed one is an error.
func LoadMetadata(path string) (Metadata, error) {
	var md Metadata
	if path == "" {
		return md, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return md, nil
	}
	if err != nil {
		return md, fmt.Errorf("read metadata: %w", err)
	}
	if err := json.Unmarshal(b, &md); err != nil {
		return Metadata{}, fmt.Errorf("%w: metadata: %v", ErrCorrupt, err)
	}
	return md, nil
}

// DisplayName returns the model name or its placeholder.
func (md Metadata) DisplayName() string {
	if md.ModelName == "" {
		return PlaceholderModelName
	}
	return md.ModelName
}

// DisplayRMSE returns the RMSE with four decimals or its placeholder.
func (md Metadata) DisplayRMSE() string { return metric(md.RMSE) }

// DisplayR2 returns R² with four decimals or its placeholder.
func (md Metadata) DisplayR2() string { return metric(md.R2) }

// Caption renders the one-line model description.
func (md Metadata) Caption() string {
	return "Model: " + md.DisplayName() + " · RMSE: " + md.DisplayRMSE() + " · R²: " + md.DisplayR2()
}

func metric(v *float64) string {
	if v == nil {
		return PlaceholderMetric
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
