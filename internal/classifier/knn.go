package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// knn is a k-nearest-neighbours classifier over Euclidean distance.
type knn struct {
	k        int
	distance bool
	samples  [][]float64
	labels   []int // index into classes
	classes  []int
}

func newKNN(spec *KNNSpec, classes []int, width int) (*knn, error) {
	if spec.K < 1 {
		return nil, fmt.Errorf("knn: k=%d, need at least 1", spec.K)
	}
	if len(spec.Samples) == 0 {
		return nil, errors.New("knn: no training samples")
	}
	if spec.K > len(spec.Samples) {
		return nil, fmt.Errorf("knn: k=%d exceeds %d training samples", spec.K, len(spec.Samples))
	}
	if len(spec.Labels) != len(spec.Samples) {
		return nil, fmt.Errorf("knn: %d labels for %d samples", len(spec.Labels), len(spec.Samples))
	}

	classIndex := make(map[int]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	m := &knn{
		k:        spec.K,
		distance: spec.Weights == WeightsDistance,
		samples:  make([][]float64, len(spec.Samples)),
		labels:   make([]int, len(spec.Labels)),
		classes:  append([]int(nil), classes...),
	}
	for i, row := range spec.Samples {
		if len(row) != width {
			return nil, fmt.Errorf("knn: sample %d has %d values, manifest has %d columns", i, len(row), width)
		}
		m.samples[i] = append([]float64(nil), row...)
	}
	for i, l := range spec.Labels {
		ci, ok := classIndex[l]
		if !ok {
			return nil, fmt.Errorf("knn: sample %d label %d is not a declared class", i, l)
		}
		m.labels[i] = ci
	}
	return m, nil
}

type neighbour struct {
	dist  float64
	label int
}

func (m *knn) neighbours(x []float64) ([]neighbour, error) {
	if len(x) != len(m.samples[0]) {
		return nil, fmt.Errorf("knn: input has %d values, want %d", len(x), len(m.samples[0]))
	}
	all := make([]neighbour, len(m.samples))
	for i, row := range m.samples {
		var sum float64
		for j := range row {
			d := row[j] - x[j]
			sum += d * d
		}
		all[i] = neighbour{dist: math.Sqrt(sum), label: m.labels[i]}
	}
	// Stable so equidistant samples keep training order.
	sort.SliceStable(all, func(a, b int) bool { return all[a].dist < all[b].dist })
	return all[:m.k], nil
}

func (m *knn) PredictProba(x []float64) ([]float64, error) {
	nn, err := m.neighbours(x)
	if err != nil {
		return nil, err
	}

	proba := make([]float64, len(m.classes))
	exact := false
	if m.distance {
		for _, n := range nn {
			if n.dist == 0 {
				exact = true
				break
			}
		}
	}

	var total float64
	for _, n := range nn {
		w := 1.0
		if m.distance {
			switch {
			case exact && n.dist == 0:
				w = 1
			case exact:
				w = 0
			default:
				w = 1 / n.dist
			}
		}
		proba[n.label] += w
		total += w
	}
	for i := range proba {
		proba[i] /= total
	}
	return proba, nil
}

func (m *knn) Predict(x []float64) (int, error) {
	proba, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return m.classes[argmax(proba)], nil
}

// argmax returns the first index of the largest value.
func argmax(xs []float64) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}
	return best
}
