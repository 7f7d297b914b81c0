// Package inference runs the pass/fail classifier on an encoded profile and
// produces the verdict, chart data and report for one request.
package inference

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/chart"
	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/encoder"
	"github.com/abhisek/passpredict/internal/feature"
	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/report"
)

// ErrConfiguration marks a mismatch between the encoder's output and the
// model's feature manifest. It is never recovered from by guessing.
var ErrConfiguration = errors.New("model configuration error")

// Service owns the loaded model. It holds no per-request state and is safe
// to share between sessions.
type Service struct {
	model *classifier.Model
	enc   *encoder.Encoder
	log   *zap.Logger
}

// NewService wires a loaded model and an encoder. A nil encoder selects
// encoder.Default; a nil logger discards logs.
func NewService(model *classifier.Model, enc *encoder.Encoder, log *zap.Logger) (*Service, error) {
	if model == nil {
		return nil, errors.New("inference: no model loaded")
	}
	if enc == nil {
		enc = encoder.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{model: model, enc: enc, log: log}, nil
}

// Model returns the loaded model.
func (s *Service) Model() *classifier.Model { return s.model }

// Predict runs the classifier on an aligned feature vector.
func (s *Service) Predict(v feature.Vector) (PredictionResult, error) {
	label, err := s.model.Predict(v)
	if err != nil {
		return PredictionResult{}, s.wrap(err)
	}
	proba, err := s.model.PredictProba(v)
	if err != nil {
		return PredictionResult{}, s.wrap(err)
	}
	idx := s.model.PassIndex()
	if idx >= len(proba) {
		return PredictionResult{}, fmt.Errorf("%w: model returned %d probabilities, pass index is %d", ErrConfiguration, len(proba), idx)
	}

	res := PredictionResult{Label: Fail, ProbabilityOfPass: proba[idx]}
	if label == s.model.PositiveClass() {
		res.Label = Pass
	}
	return res, nil
}

func (s *Service) wrap(err error) error {
	if errors.Is(err, classifier.ErrColumnMismatch) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return fmt.Errorf("predict: %w", err)
}

// Evaluate encodes p, runs the classifier and renders the outputs. Any
// error ends the request without partial results.
func (s *Service) Evaluate(p *profile.StudentProfile) (*Outcome, error) {
	id := uuid.NewString()
	log := s.log.With(zap.String("request_id", id))

	v, err := s.enc.EncodeFor(p, s.model.ExpectedColumns())
	if err != nil {
		var mm *feature.MismatchError
		if errors.As(err, &mm) {
			log.Error("feature columns do not match model", zap.Strings("missing", mm.Missing), zap.Strings("unexpected", mm.Unexpected))
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	res, err := s.Predict(v)
	if err != nil {
		log.Error("prediction failed", zap.Error(err))
		return nil, err
	}

	gpa, _ := p.Number(profile.GPA)
	rep, err := report.Render(report.Input{
		StudentName:       p.Name,
		Verdict:           res.Label.Verdict(),
		ProbabilityOfPass: res.ProbabilityOfPass,
		GPA:               gpa,
		FinalGrade:        p.Int(profile.G3),
		Age:               p.Int(profile.Age),
		Absences:          p.Int(profile.Absences),
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	log.Info("prediction",
		zap.String("model", s.model.Name()),
		zap.String("label", string(res.Label)),
		zap.Float64("probability_of_pass", res.ProbabilityOfPass))

	return &Outcome{
		RequestID: id,
		Profile:   p,
		Vector:    v,
		Result:    res,
		Chart:     chart.New(res.ProbabilityOfPass),
		Report:    rep,
	}, nil
}
