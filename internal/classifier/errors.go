package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeatureManifest means the artifact does not record the input
	// column names it was trained on. There is no fallback ordering.
	ErrNoFeatureManifest = errors.New("model does not contain feature names; re-train it with a recorded feature manifest")

	ErrUnsupportedFormat = errors.New("unsupported model format version")
	ErrColumnMismatch    = errors.New("feature vector does not match the model manifest")
)

// ArtifactError reports a model artifact that is malformed or internally
// inconsistent.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid model artifact %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid model artifact: %v", e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }
