package manager

import (
	"time"

	"yieldd/internal/schema"
)

// State represents the lifecycle state of the model handle.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Predictor is the capability the manager needs from a loaded artifact.
type Predictor interface {
	Predict(row schema.Row) (float64, error)
	Features() []string
	Compatible(cols []string) error
	Name() string
	Target() string
}

// Result is the outcome of one successful submission.
type Result struct {
	PredictionID string
	Revision     schema.Revision
	Yield        float64
	Production   float64
	Area         float64
	Caption      string
}

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State    State
	Err      string
	LoadedAt time.Time
}
