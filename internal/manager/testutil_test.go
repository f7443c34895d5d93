package manager

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"yieldd/internal/schema"
)

// artifactPath points at fixtures shared with the artifact package.
func artifactPath(name string) string {
	return filepath.Join("..", "artifact", "testdata", name)
}

// fakePredictor is a lightweight in-memory model used for tests.
type fakePredictor struct {
	yield    float64
	err      error
	features []string
	lastRow  schema.Row
}

func (f *fakePredictor) Predict(row schema.Row) (float64, error) {
	f.lastRow = row
	if f.err != nil {
		return 0, f.err
	}
	return f.yield, nil
}

func (f *fakePredictor) Features() []string { return f.features }

func (f *fakePredictor) Compatible(cols []string) error {
	if len(cols) != len(f.features) {
		return errors.New("column count mismatch")
	}
	return nil
}

func (f *fakePredictor) Name() string   { return "fake" }
func (f *fakePredictor) Target() string { return "Yield_mt_per_ha" }

func fakeLoader(p *fakePredictor) LoaderFunc {
	return func(string) (Predictor, error) { return p, nil }
}

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}
