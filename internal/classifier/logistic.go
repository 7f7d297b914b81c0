package classifier

import (
	"fmt"
	"math"
)

// logistic is a binary logistic regression. The sigmoid output is the
// probability of the second declared class.
type logistic struct {
	coef      []float64
	intercept float64
	classes   []int
}

func newLogistic(spec *LogitSpec, classes []int, width int) (*logistic, error) {
	if len(classes) != 2 {
		return nil, fmt.Errorf("logistic: binary model needs 2 classes, got %d", len(classes))
	}
	if len(spec.Coefficients) != width {
		return nil, fmt.Errorf("logistic: %d coefficients, manifest has %d columns", len(spec.Coefficients), width)
	}
	return &logistic{
		coef:      append([]float64(nil), spec.Coefficients...),
		intercept: spec.Intercept,
		classes:   append([]int(nil), classes...),
	}, nil
}

func (m *logistic) decision(x []float64) (float64, error) {
	if len(x) != len(m.coef) {
		return 0, fmt.Errorf("logistic: input has %d values, want %d", len(x), len(m.coef))
	}
	z := m.intercept
	for i, w := range m.coef {
		z += w * x[i]
	}
	return z, nil
}

func (m *logistic) PredictProba(x []float64) ([]float64, error) {
	z, err := m.decision(x)
	if err != nil {
		return nil, err
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

func (m *logistic) Predict(x []float64) (int, error) {
	z, err := m.decision(x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return m.classes[1], nil
	}
	return m.classes[0], nil
}
