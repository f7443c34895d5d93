package artifact

import "fmt"

// estimator evaluates an encoded feature vector.
type estimator interface {
	predict(x []float64) float64
}

type node struct {
	col         int
	threshold   float64
	left, right int
	value       float64
	leaf        bool
}

type tree []node

func (t tree) eval(x []float64) float64 {
	i := 0
	for {
		n := t[i]
		if n.leaf {
			return n.value
		}
		if x[n.col] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

// gradientBoosting sums scaled tree outputs on top of a constant init
// prediction.
type gradientBoosting struct {
	init         float64
	learningRate float64
	trees        []tree
}

func (g *gradientBoosting) predict(x []float64) float64 {
	sum := g.init
	for _, t := range g.trees {
		sum += g.learningRate * t.eval(x)
	}
	return sum
}

type linear struct {
	intercept float64
	coef      []float64
}

func (l *linear) predict(x []float64) float64 {
	sum := l.intercept
	for i, c := range l.coef {
		sum += c * x[i]
	}
	return sum
}

func buildEstimator(spec EstimatorSpec, enc *encoder) (estimator, error) {
	switch spec.Type {
	case EstimatorGradientBoosting:
		if spec.LearningRate <= 0 {
			return nil, fmt.Errorf("%w: learning_rate must be > 0", ErrCorrupt)
		}
		if len(spec.Trees) == 0 {
			return nil, fmt.Errorf("%w: gradient boosting without trees", ErrCorrupt)
		}
		g := &gradientBoosting{init: spec.Init, learningRate: spec.LearningRate}
		for ti, ts := range spec.Trees {
			t, err := buildTree(ts, enc)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", ti, err)
			}
			g.trees = append(g.trees, t)
		}
		return g, nil
	case EstimatorLinear:
		l := &linear{intercept: spec.Intercept, coef: make([]float64, len(enc.columns))}
		for col, c := range spec.Coefficients {
			i, ok := enc.index[col]
			if !ok {
				return nil, fmt.Errorf("%w: coefficient for unknown column %q", ErrCorrupt, col)
			}
			l.coef[i] = c
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: estimator type %q", ErrUnsupportedFormat, spec.Type)
	}
}

// buildTree resolves column names and checks that every child index points
// forward, which rules out cycles.
func buildTree(ts TreeSpec, enc *encoder) (tree, error) {
	if len(ts.Nodes) == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrCorrupt)
	}
	t := make(tree, len(ts.Nodes))
	for i, ns := range ts.Nodes {
		if ns.Left == -1 {
			t[i] = node{leaf: true, value: ns.Value}
			continue
		}
		if ns.Left <= i || ns.Right <= i || ns.Left >= len(ts.Nodes) || ns.Right >= len(ts.Nodes) {
			return nil, fmt.Errorf("%w: node %d has invalid children (%d, %d)", ErrCorrupt, i, ns.Left, ns.Right)
		}
		col, ok := enc.index[ns.Feature]
		if !ok {
			return nil, fmt.Errorf("%w: node %d splits on unknown column %q", ErrCorrupt, i, ns.Feature)
		}
		t[i] = node{col: col, threshold: ns.Threshold, left: ns.Left, right: ns.Right}
	}
	return t, nil
}
