// Package classifier loads the pre-trained pass/fail model and runs it.
package classifier

// Classifier is a trained binary model operating on raw feature rows whose
// layout matches the model's feature manifest.
type Classifier interface {
	// Predict returns the predicted class label.
	Predict(x []float64) (int, error)
	// PredictProba returns one probability per class, in Classes order.
	PredictProba(x []float64) ([]float64, error)
}
