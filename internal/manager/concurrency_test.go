package manager

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"yieldd/internal/schema"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPredict_ConcurrentSubmissions(t *testing.T) {
	pub := NewMemoryPublisher()
	m := NewWithConfig(ManagerConfig{
		Revision:     schema.RevisionB,
		ArtifactPath: artifactPath("basic.json"),
		Publisher:    pub,
	})
	if err := m.Load(testCtx(t)); err != nil {
		t.Fatalf("load: %v", err)
	}
	const n = 32
	ctx := testCtx(t)
	var wg sync.WaitGroup
	ids := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := schema.DefaultInput()
			in.AreaSownHa = float64(i + 1)
			res, err := m.Predict(ctx, in)
			if err == nil && math.Abs(res.Production-4.5*float64(i+1)) > 1e-9 {
				err = fmt.Errorf("production = %v", res.Production)
			}
			ids[i], errs[i] = res.PredictionID, err
		}(i)
	}
	wg.Wait()
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("submission %d: %v", i, errs[i])
		}
		if seen[ids[i]] {
			t.Fatalf("duplicate prediction id %s", ids[i])
		}
		seen[ids[i]] = true
	}
	if got := m.Status().PredictionsTotal; got != n {
		t.Fatalf("predictions_total = %d, want %d", got, n)
	}
}
