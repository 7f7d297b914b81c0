package classifier

import "sync"

// MockClassifier is a deterministic Classifier for tests. It returns the
// same label and probabilities for every row and records the rows it saw.
type MockClassifier struct {
	mu    sync.Mutex
	Label int
	Proba []float64
	Rows  [][]float64
}

// NewMock returns a MockClassifier answering label with proba.
func NewMock(label int, proba ...float64) *MockClassifier {
	return &MockClassifier{Label: label, Proba: proba}
}

func (m *MockClassifier) Predict(x []float64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rows = append(m.Rows, append([]float64(nil), x...))
	return m.Label, nil
}

func (m *MockClassifier) PredictProba(x []float64) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rows = append(m.Rows, append([]float64(nil), x...))
	return append([]float64(nil), m.Proba...), nil
}

// CallCount returns the number of Predict and PredictProba calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Rows)
}
