package artifact

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the only artifact layout this build understands.
const FormatVersion = 1

// Feature kinds.
const (
	KindNumeric     = "numeric"
	KindCategorical = "categorical"
)

// Estimator types.
const (
	EstimatorGradientBoosting = "gradient_boosting"
	EstimatorLinear           = "linear"
)

// Document is the on-disk layout of a trained regressor.
type Document struct {
	FormatVersion int           `json:"format_version" yaml:"format_version" toml:"format_version"`
	Name          string        `json:"name" yaml:"name" toml:"name"`
	Target        string        `json:"target" yaml:"target" toml:"target"`
	Features      []FeatureSpec `json:"features" yaml:"features" toml:"features"`
	Estimator     EstimatorSpec `json:"estimator" yaml:"estimator" toml:"estimator"`
}

// FeatureSpec declares one input column of the model.
type FeatureSpec struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Kind       string   `json:"kind" yaml:"kind" toml:"kind"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`
}

// EstimatorSpec holds the parameters of either estimator type.
// Gradient boosting uses Init, LearningRate and Trees; linear uses
// Intercept and Coefficients (keyed by encoded column name).
type EstimatorSpec struct {
	Type         string             `json:"type" yaml:"type" toml:"type"`
	Init         float64            `json:"init,omitempty" yaml:"init,omitempty" toml:"init,omitempty"`
	LearningRate float64            `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty" toml:"learning_rate,omitempty"`
	Trees        []TreeSpec         `json:"trees,omitempty" yaml:"trees,omitempty" toml:"trees,omitempty"`
	Intercept    float64            `json:"intercept,omitempty" yaml:"intercept,omitempty" toml:"intercept,omitempty"`
	Coefficients map[string]float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty" toml:"coefficients,omitempty"`
}

// TreeSpec is a flattened regression tree; node 0 is the root.
type TreeSpec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// NodeSpec is a split (x[Feature] <= Threshold goes Left) or, when Left is
// -1, a leaf carrying Value.
type NodeSpec struct {
	Feature   string  `json:"feature,omitempty" yaml:"feature,omitempty" toml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Left      int     `json:"left" yaml:"left" toml:"left"`
	Right     int     `json:"right" yaml:"right" toml:"right"`
	Value     float64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Decode parses b according to the file extension ext (".json", ".yaml",
// ".yml" or ".toml").
func Decode(b []byte, ext string) (Document, error) {
	var doc Document
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc, nil
}

// SupportedExt reports whether path has an extension Decode understands.
func SupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
