package inference

import (
	"github.com/abhisek/passpredict/internal/chart"
	"github.com/abhisek/passpredict/internal/feature"
	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/report"
)

// Label is the binary verdict.
type Label string

const (
	Pass Label = "Pass"
	Fail Label = "Fail"
)

// Verdict returns the label as shown to the user.
func (l Label) Verdict() string {
	if l == Pass {
		return "✅ Pass"
	}
	return "❌ Fail"
}

// PredictionResult is the classifier's answer for one feature vector.
type PredictionResult struct {
	Label             Label
	ProbabilityOfPass float64
}

// Outcome bundles everything produced by one explicit prediction request.
// It is discarded once rendered.
type Outcome struct {
	RequestID string
	Profile   *profile.StudentProfile
	Vector    feature.Vector
	Result    PredictionResult
	Chart     chart.Probabilities
	Report    report.Report
}
