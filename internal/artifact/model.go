package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"yieldd/internal/schema"
)

// Model is a decoded, validated regressor. It is immutable after Load and
// safe for concurrent use.
type Model struct {
	name     string
	target   string
	features []FeatureSpec
	enc      *encoder
	est      estimator
}

// Load reads and validates the artifact at path.
func Load(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	doc, err := Decode(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	m, err := New(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// New builds a Model from an already decoded document.
func New(doc Document) (*Model, error) {
	if doc.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d (re-export the model with the current tooling)", ErrSchemaVersion, doc.FormatVersion, FormatVersion)
	}
	if len(doc.Features) == 0 {
		return nil, fmt.Errorf("%w: no features declared", ErrCorrupt)
	}
	enc, err := newEncoder(doc.Features)
	if err != nil {
		return nil, err
	}
	est, err := buildEstimator(doc.Estimator, enc)
	if err != nil {
		return nil, err
	}
	return &Model{
		name:     doc.Name,
		target:   doc.Target,
		features: append([]FeatureSpec(nil), doc.Features...),
		enc:      enc,
		est:      est,
	}, nil
}

// Name is the model's display name from the artifact, possibly empty.
func (m *Model) Name() string { return m.name }

// Target is the name of the predicted quantity.
func (m *Model) Target() string { return m.target }

// Features returns the declared feature names in artifact order.
func (m *Model) Features() []string {
	out := make([]string, len(m.features))
	for i, f := range m.features {
		out[i] = f.Name
	}
	return out
}

// Compatible checks that the model declares exactly the columns in cols.
func (m *Model) Compatible(cols []string) error {
	have := m.Features()
	sort.Strings(have)
	want := append([]string(nil), cols...)
	sort.Strings(want)
	var missing, extra []string
	hs := make(map[string]bool, len(have))
	for _, c := range have {
		hs[c] = true
	}
	ws := make(map[string]bool, len(want))
	for _, c := range want {
		ws[c] = true
		if !hs[c] {
			extra = append(extra, c)
		}
	}
	for _, c := range have {
		if !ws[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "model needs "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "model does not know "+strings.Join(extra, ", "))
	}
	return fmt.Errorf("%w: %s", ErrIncompatible, strings.Join(parts, "; "))
}

// Predict returns the model output for a single row. The row must carry
// exactly the declared feature names.
func (m *Model) Predict(row schema.Row) (float64, error) {
	x, err := m.enc.encode(row)
	if err != nil {
		return 0, err
	}
	return m.est.predict(x), nil
}
