package cmd

import (
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/encoder"
	"github.com/abhisek/passpredict/internal/inference"
)

// loadService loads the model once and builds the inference service
// around it. The error is a startup configuration error.
func loadService(path string, log *zap.Logger) (*inference.Service, error) {
	model, err := classifier.Load(path)
	if err != nil {
		log.Error("model load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	log.Info("model loaded",
		zap.String("path", path),
		zap.String("name", model.Name()),
		zap.String("algorithm", model.Algorithm()),
		zap.Int("features", len(model.ExpectedColumns())))
	return inference.NewService(model, encoder.Default(), log)
}
