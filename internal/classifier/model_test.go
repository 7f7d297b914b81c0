package classifier

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passpredict/internal/feature"
)

func intPtr(v int) *int { return &v }

func knnArtifact() Artifact {
	return Artifact{
		FormatVersion: "v1.0.0",
		Name:          "knn_model",
		Algorithm:     AlgorithmKNN,
		FeatureNames:  []string{"x"},
		Classes:       []int{0, 1},
		KNN: &KNNSpec{
			K:       3,
			Weights: WeightsUniform,
			Samples: [][]float64{{0}, {1}, {2}, {10}, {11}},
			Labels:  []int{0, 0, 1, 1, 1},
		},
	}
}

func vec(t *testing.T, cols []string, vals ...float64) feature.Vector {
	t.Helper()
	var b feature.Builder
	for i, c := range cols {
		b.Add(c, vals[i])
	}
	v, err := b.Build()
	require.NoError(t, err)
	return v
}

func marshal(t *testing.T, a any) []byte {
	t.Helper()
	data, err := json.Marshal(a)
	require.NoError(t, err)
	return data
}

func TestParse_KNN(t *testing.T) {
	m, err := Parse(marshal(t, knnArtifact()))
	require.NoError(t, err)

	assert.Equal(t, "knn_model", m.Name())
	assert.Equal(t, AlgorithmKNN, m.Algorithm())
	assert.Equal(t, "v1.0.0", m.Version())
	assert.Equal(t, []string{"x"}, m.ExpectedColumns())
	assert.Equal(t, 1, m.PositiveClass())
	assert.Equal(t, 1, m.PassIndex())

	proba, err := m.PredictProba(vec(t, []string{"x"}, 0.9))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, proba[0], 1e-9)
	assert.InDelta(t, 1.0/3, proba[1], 1e-9)

	label, err := m.Predict(vec(t, []string{"x"}, 0.9))
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	label, err = m.Predict(vec(t, []string{"x"}, 10.5))
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestKNN_DistanceWeightsExactMatch(t *testing.T) {
	a := knnArtifact()
	a.KNN.Weights = WeightsDistance
	m, err := FromArtifact(a)
	require.NoError(t, err)

	proba, err := m.PredictProba(vec(t, []string{"x"}, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, proba)
}

func TestKNN_DistanceWeights(t *testing.T) {
	a := knnArtifact()
	a.KNN.K = 2
	a.KNN.Weights = WeightsDistance
	m, err := FromArtifact(a)
	require.NoError(t, err)

	// Neighbours of 1.75: x=2 (label 1) at 0.25 and x=1 (label 0) at 0.75.
	proba, err := m.PredictProba(vec(t, []string{"x"}, 1.75))
	require.NoError(t, err)
	// weights 4/3 and 4
	assert.InDelta(t, 0.25, proba[0], 1e-9)
	assert.InDelta(t, 0.75, proba[1], 1e-9)
}

func TestKNN_TieGoesToFirstClass(t *testing.T) {
	a := knnArtifact()
	a.KNN.K = 2
	m, err := FromArtifact(a)
	require.NoError(t, err)

	label, err := m.Predict(vec(t, []string{"x"}, 1.5))
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLogistic(t *testing.T) {
	a := Artifact{
		FormatVersion: "v1.2.0",
		Algorithm:     AlgorithmLogistic,
		FeatureNames:  []string{"a", "b"},
		Classes:       []int{0, 1},
		Logistic:      &LogitSpec{Coefficients: []float64{1, 0}, Intercept: 0},
	}
	m, err := Parse(marshal(t, a))
	require.NoError(t, err)

	proba, err := m.PredictProba(vec(t, []string{"a", "b"}, 2, 7))
	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, proba[1], 1e-12)
	assert.InDelta(t, 1, proba[0]+proba[1], 1e-12)

	label, err := m.Predict(vec(t, []string{"a", "b"}, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, label, "zero decision falls to the first class")
}

func TestPositiveClassMapping(t *testing.T) {
	a := knnArtifact()
	a.Classes = []int{1, 0}
	m, err := FromArtifact(a)
	require.NoError(t, err)
	assert.Equal(t, 0, m.PassIndex())

	a = knnArtifact()
	a.PositiveClass = intPtr(0)
	m, err = FromArtifact(a)
	require.NoError(t, err)
	assert.Equal(t, 0, m.PassIndex())
	assert.Equal(t, 0, m.PositiveClass())
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *Artifact)
		sentinel error
		artifact bool
	}{
		{
			name:     "no feature manifest",
			mutate:   func(a *Artifact) { a.FeatureNames = nil },
			sentinel: ErrNoFeatureManifest,
		},
		{
			name:     "version not semver",
			mutate:   func(a *Artifact) { a.FormatVersion = "1.0" },
			sentinel: ErrUnsupportedFormat,
		},
		{
			name:     "future major version",
			mutate:   func(a *Artifact) { a.FormatVersion = "v2.0.0" },
			sentinel: ErrUnsupportedFormat,
		},
		{
			name:     "unknown algorithm",
			mutate:   func(a *Artifact) { a.Algorithm = "svm" },
			artifact: true,
		},
		{
			name:     "knn block missing",
			mutate:   func(a *Artifact) { a.KNN = nil },
			artifact: true,
		},
		{
			name:     "k larger than training set",
			mutate:   func(a *Artifact) { a.KNN.K = 9 },
			artifact: true,
		},
		{
			name:     "sample width differs from manifest",
			mutate:   func(a *Artifact) { a.FeatureNames = []string{"x", "y"} },
			artifact: true,
		},
		{
			name:     "undeclared label",
			mutate:   func(a *Artifact) { a.KNN.Labels[0] = 7 },
			artifact: true,
		},
		{
			name:     "positive class not declared",
			mutate:   func(a *Artifact) { a.PositiveClass = intPtr(5) },
			artifact: true,
		},
		{
			name:     "duplicate feature names",
			mutate: func(a *Artifact) {
				a.FeatureNames = []string{"x", "x"}
				a.KNN.Samples = [][]float64{{0, 0}, {1, 1}, {2, 2}}
				a.KNN.Labels = []int{0, 1, 1}
			},
			artifact: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := knnArtifact()
			tt.mutate(&a)
			_, err := Parse(marshal(t, a))
			require.Error(t, err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			if tt.artifact {
				var ae *ArtifactError
				assert.True(t, errors.As(err, &ae), "want ArtifactError, got %T: %v", err, err)
			}
		})
	}
}

func TestFromArtifact_RejectsDegenerateKNN(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Artifact)
		want   string
	}{
		{
			name:   "k zero",
			mutate: func(a *Artifact) { a.KNN.K = 0 },
			want:   "k=0",
		},
		{
			name:   "k negative",
			mutate: func(a *Artifact) { a.KNN.K = -2 },
			want:   "k=-2",
		},
		{
			name: "no samples",
			mutate: func(a *Artifact) {
				a.KNN.Samples = nil
				a.KNN.Labels = nil
			},
			want: "no training samples",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := knnArtifact()
			tt.mutate(&a)
			m, err := FromArtifact(a)
			assert.Nil(t, m)
			var ae *ArtifactError
			require.ErrorAs(t, err, &ae)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	var ae *ArtifactError
	require.ErrorAs(t, err, &ae)
}

func TestPredict_RejectsMisalignedVector(t *testing.T) {
	m, err := New([]string{"a", "b"}, []int{0, 1}, 1, &knn{})
	require.NoError(t, err)

	_, err = m.Predict(vec(t, []string{"b", "a"}, 1, 2))
	require.ErrorIs(t, err, ErrColumnMismatch)

	_, err = m.PredictProba(vec(t, []string{"a"}, 1))
	require.ErrorIs(t, err, ErrColumnMismatch)
	var mm *feature.MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, []string{"b"}, mm.Missing)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knn_model.json")
	require.NoError(t, os.WriteFile(path, marshal(t, knnArtifact()), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "knn_model", m.Name())

	bad := knnArtifact()
	bad.Algorithm = "svm"
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, marshal(t, bad), 0o644))
	_, err = Load(badPath)
	var ae *ArtifactError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, badPath, ae.Path)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_RejectsThreeClasses(t *testing.T) {
	_, err := New([]string{"a"}, []int{0, 1, 2}, 1, &knn{})
	var ae *ArtifactError
	require.ErrorAs(t, err, &ae)
}
