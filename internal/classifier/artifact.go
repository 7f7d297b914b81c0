package classifier

// Artifact is the on-disk form of a trained classifier.
type Artifact struct {
	FormatVersion string     `json:"format_version"`
	Name          string     `json:"name,omitempty"`
	Algorithm     string     `json:"algorithm"`
	FeatureNames  []string   `json:"feature_names,omitempty"`
	Classes       []int      `json:"classes"`
	PositiveClass *int       `json:"positive_class,omitempty"`
	KNN           *KNNSpec   `json:"knn,omitempty"`
	Logistic      *LogitSpec `json:"logistic,omitempty"`
}

// KNNSpec holds a k-nearest-neighbours model: the training rows and their
// class labels.
type KNNSpec struct {
	K       int         `json:"k"`
	Weights string      `json:"weights,omitempty"`
	Samples [][]float64 `json:"samples"`
	Labels  []int       `json:"labels"`
}

// LogitSpec holds a binary logistic regression model.
type LogitSpec struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

const (
	AlgorithmKNN      = "knn"
	AlgorithmLogistic = "logistic"

	WeightsUniform  = "uniform"
	WeightsDistance = "distance"

	// DefaultPositiveClass is the class label treated as "pass" when the
	// artifact does not name one.
	DefaultPositiveClass = 1

	// SupportedMajor is the artifact format major version this build reads.
	SupportedMajor = "v1"
)

// artifactSchema is the structural contract of the artifact document.
// Semantic checks (widths, manifest, positive class) live in FromArtifact.
const artifactSchema = `{
  "type": "object",
  "required": ["format_version", "algorithm", "classes"],
  "properties": {
    "format_version": {"type": "string", "minLength": 1},
    "name": {"type": "string"},
    "algorithm": {"type": "string", "enum": ["knn", "logistic"]},
    "feature_names": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "classes": {"type": "array", "minItems": 2, "items": {"type": "integer"}},
    "positive_class": {"type": "integer"},
    "knn": {
      "type": "object",
      "required": ["k", "samples", "labels"],
      "properties": {
        "k": {"type": "integer", "minimum": 1},
        "weights": {"type": "string", "enum": ["uniform", "distance"]},
        "samples": {"type": "array", "minItems": 1, "items": {"type": "array", "items": {"type": "number"}}},
        "labels": {"type": "array", "minItems": 1, "items": {"type": "integer"}}
      }
    },
    "logistic": {
      "type": "object",
      "required": ["coefficients", "intercept"],
      "properties": {
        "coefficients": {"type": "array", "items": {"type": "number"}},
        "intercept": {"type": "number"}
      }
    }
  },
  "allOf": [
    {"if": {"properties": {"algorithm": {"const": "knn"}}}, "then": {"required": ["knn"]}},
    {"if": {"properties": {"algorithm": {"const": "logistic"}}}, "then": {"required": ["logistic"]}}
  ]
}`
