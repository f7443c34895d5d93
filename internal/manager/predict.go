package manager

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"yieldd/internal/schema"
)

// Predict runs one submission: validate, build the revision's feature row,
// ask the model for a yield and derive the production estimate. Errors are
// per-submission; the manager stays usable.
func (m *Manager) Predict(ctx context.Context, in schema.Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	m.mu.RLock()
	model := m.model
	loadErr := m.err
	m.mu.RUnlock()
	if model == nil {
		return Result{}, ErrModelUnavailable(m.artifactPath, loadErr)
	}

	id := uuid.NewString()
	in = in.Normalize()
	if err := in.Validate(m.revision); err != nil {
		m.failPrediction(id, err)
		return Result{}, invalidInputError{err: err}
	}
	yield, err := model.Predict(schema.BuildRow(m.revision, in))
	if err != nil {
		m.failPrediction(id, err)
		return Result{}, predictionError{err: err}
	}
	res := Result{
		PredictionID: id,
		Revision:     m.revision,
		Yield:        yield,
		Area:         schema.ProductionArea(m.revision, in),
		Production:   schema.EstimateProduction(m.revision, in, yield),
		Caption:      m.Caption(),
	}
	if err := checkFinite(res); err != nil {
		m.failPrediction(id, err)
		return Result{}, predictionError{err: err}
	}
	m.predictionsTotal.Add(1)
	m.publish(Event{Name: EventPredictionSucceeded, Revision: m.revision.String(), Fields: map[string]any{
		"prediction_id": id,
		"crop":          in.Crop,
		"season":        in.Season,
		"yield":         yield,
		"production":    res.Production,
	}})
	return res, nil
}

// checkFinite rejects results that cannot be displayed or encoded.
func checkFinite(res Result) error {
	if math.IsNaN(res.Yield) || math.IsInf(res.Yield, 0) {
		return fmt.Errorf("yield: %w", ErrNonFinite)
	}
	if math.IsNaN(res.Production) || math.IsInf(res.Production, 0) {
		return fmt.Errorf("production estimate for %g ha: %w", res.Area, ErrNonFinite)
	}
	return nil
}

func (m *Manager) failPrediction(id string, err error) {
	m.errorsTotal.Add(1)
	m.publish(Event{Name: EventPredictionFailed, Revision: m.revision.String(), Fields: map[string]any{
		"prediction_id": id,
		"error":         err.Error(),
	}})
}
