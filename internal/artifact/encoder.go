package artifact

import (
	"fmt"
	"math"

	"yieldd/internal/schema"
)

// encoder turns a named feature row into the dense vector the estimator was
// fit on. Numeric features pass through; categorical features are one-hot
// encoded as "Name=Category" columns and unseen categories encode to zeros.
type encoder struct {
	features []FeatureSpec
	columns  []string
	index    map[string]int
}

func newEncoder(features []FeatureSpec) (*encoder, error) {
	e := &encoder{features: features, index: make(map[string]int)}
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: feature with empty name", ErrCorrupt)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate feature %q", ErrCorrupt, f.Name)
		}
		seen[f.Name] = true
		switch f.Kind {
		case KindNumeric:
			e.add(f.Name)
		case KindCategorical:
			for _, c := range f.Categories {
				e.add(oneHotName(f.Name, c))
			}
		default:
			return nil, fmt.Errorf("%w: feature %q has unknown kind %q", ErrCorrupt, f.Name, f.Kind)
		}
	}
	return e, nil
}

func (e *encoder) add(col string) {
	if _, ok := e.index[col]; ok {
		return
	}
	e.index[col] = len(e.columns)
	e.columns = append(e.columns, col)
}

func oneHotName(feature, category string) string { return feature + "=" + category }

// check verifies the row carries exactly the declared features with the
// right cell types.
func (e *encoder) check(row schema.Row) error {
	for _, f := range e.features {
		v, ok := row[f.Name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, f.Name)
		}
		switch f.Kind {
		case KindNumeric:
			if v.IsStr {
				return fmt.Errorf("%w: %s expects a number, got %q", ErrColumnType, f.Name, v.Str)
			}
			if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
				return fmt.Errorf("%w: %s is not finite", ErrColumnType, f.Name)
			}
		case KindCategorical:
			if !v.IsStr {
				return fmt.Errorf("%w: %s expects a category, got %v", ErrColumnType, f.Name, v.Num)
			}
		}
	}
	if len(row) != len(e.features) {
		declared := make(map[string]bool, len(e.features))
		for _, f := range e.features {
			declared[f.Name] = true
		}
		for _, col := range row.Columns() {
			if !declared[col] {
				return fmt.Errorf("%w: %s", ErrUnexpectedColumn, col)
			}
		}
	}
	return nil
}

func (e *encoder) encode(row schema.Row) ([]float64, error) {
	if err := e.check(row); err != nil {
		return nil, err
	}
	x := make([]float64, len(e.columns))
	for _, f := range e.features {
		v := row[f.Name]
		if f.Kind == KindNumeric {
			x[e.index[f.Name]] = v.Num
			continue
		}
		if i, ok := e.index[oneHotName(f.Name, v.Str)]; ok {
			x[i] = 1
		}
	}
	return x, nil
}
