package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/passpredict/internal/feature"
)

// Model is a loaded, validated classifier together with its feature
// manifest. It is never mutated after loading and is safe for concurrent use.
type Model struct {
	name      string
	algorithm string
	version   string
	features  []string
	classes   []int
	positive  int
	passIndex int
	clf       Classifier
}

// Load reads and validates the artifact at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		var ae *ArtifactError
		if errors.As(err, &ae) && ae.Path == "" {
			ae.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Parse decodes an artifact document, validates its structure against the
// artifact schema and builds the Model.
func Parse(data []byte) (*Model, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ArtifactError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile artifact schema: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &ArtifactError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var a Artifact
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&a); err != nil {
		return nil, &ArtifactError{Err: fmt.Errorf("decode: %w", err)}
	}
	return FromArtifact(a)
}

// FromArtifact performs the semantic checks on a decoded artifact and
// builds the Model.
func FromArtifact(a Artifact) (*Model, error) {
	v := a.FormatVersion
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, v)
	}
	if semver.Major(v) != SupportedMajor {
		return nil, fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedFormat, v, SupportedMajor)
	}

	if len(a.FeatureNames) == 0 {
		return nil, ErrNoFeatureManifest
	}

	positive := DefaultPositiveClass
	if a.PositiveClass != nil {
		positive = *a.PositiveClass
	}

	width := len(a.FeatureNames)
	var (
		clf Classifier
		err error
	)
	switch a.Algorithm {
	case AlgorithmKNN:
		if a.KNN == nil {
			return nil, &ArtifactError{Err: errors.New("knn parameters missing")}
		}
		clf, err = newKNN(a.KNN, a.Classes, width)
	case AlgorithmLogistic:
		if a.Logistic == nil {
			return nil, &ArtifactError{Err: errors.New("logistic parameters missing")}
		}
		clf, err = newLogistic(a.Logistic, a.Classes, width)
	default:
		return nil, &ArtifactError{Err: fmt.Errorf("unknown algorithm %q", a.Algorithm)}
	}
	if err != nil {
		return nil, &ArtifactError{Err: err}
	}

	m, err := New(a.FeatureNames, a.Classes, positive, clf)
	if err != nil {
		return nil, err
	}
	m.name = a.Name
	m.algorithm = a.Algorithm
	m.version = v
	return m, nil
}

// New wraps an in-memory Classifier with its feature manifest. The positive
// class must occur exactly once among the two classes; its index is the
// probability slot read as "pass".
func New(features []string, classes []int, positive int, clf Classifier) (*Model, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatureManifest
	}
	seen := make(map[string]bool, len(features))
	for _, name := range features {
		if name == "" {
			return nil, &ArtifactError{Err: errors.New("empty feature name")}
		}
		if seen[name] {
			return nil, &ArtifactError{Err: fmt.Errorf("duplicate feature name %q", name)}
		}
		seen[name] = true
	}

	if len(classes) != 2 {
		return nil, &ArtifactError{Err: fmt.Errorf("pass/fail model needs exactly 2 classes, got %d", len(classes))}
	}
	if classes[0] == classes[1] {
		return nil, &ArtifactError{Err: fmt.Errorf("class %d declared twice", classes[0])}
	}
	passIndex := -1
	for i, c := range classes {
		if c == positive {
			passIndex = i
		}
	}
	if passIndex < 0 {
		return nil, &ArtifactError{Err: fmt.Errorf("positive class %d not among classes %v", positive, classes)}
	}
	if clf == nil {
		return nil, &ArtifactError{Err: errors.New("no classifier")}
	}

	return &Model{
		features:  append([]string(nil), features...),
		classes:   append([]int(nil), classes...),
		positive:  positive,
		passIndex: passIndex,
		clf:       clf,
	}, nil
}

// Name returns the artifact's name.
func (m *Model) Name() string { return m.name }

// Algorithm returns the model family.
func (m *Model) Algorithm() string { return m.algorithm }

// Version returns the artifact format version.
func (m *Model) Version() string { return m.version }

// ExpectedColumns returns a copy of the feature manifest in training order.
func (m *Model) ExpectedColumns() []string { return append([]string(nil), m.features...) }

// Classes returns the class labels in probability order.
func (m *Model) Classes() []int { return append([]int(nil), m.classes...) }

// PositiveClass returns the class label meaning "pass".
func (m *Model) PositiveClass() int { return m.positive }

// PassIndex returns the position of the positive class in PredictProba output.
func (m *Model) PassIndex() int { return m.passIndex }

// Predict returns the predicted class label for v.
func (m *Model) Predict(v feature.Vector) (int, error) {
	if err := m.check(v); err != nil {
		return 0, err
	}
	return m.clf.Predict(v.Values())
}

// PredictProba returns the class probabilities for v in Classes order.
func (m *Model) PredictProba(v feature.Vector) ([]float64, error) {
	if err := m.check(v); err != nil {
		return nil, err
	}
	return m.clf.PredictProba(v.Values())
}

func (m *Model) check(v feature.Vector) error {
	if feature.Conforms(v, m.features) {
		return nil
	}
	if _, err := feature.Reindex(v, m.features); err != nil {
		return fmt.Errorf("%w: %w", ErrColumnMismatch, err)
	}
	return fmt.Errorf("%w: columns are not in manifest order", ErrColumnMismatch)
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(artifactSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://passpredict-model.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
	})
	return schemaCompiled, schemaErr
}
