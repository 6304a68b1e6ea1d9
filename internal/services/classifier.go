package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"warehouse/internal/domain"
)

var ErrNotImage = errors.New("file must be an image")

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Classifier guesses which product an image shows.
type Classifier interface {
	Classify(ctx context.Context, up Upload) (domain.Prediction, error)
}

// RandomClassifier is a placeholder model: it ignores the pixels and picks a
// label and a quantity at random.
type RandomClassifier struct {
	Labels []string
	MaxQty int
}

func NewRandomClassifier() *RandomClassifier {
	return &RandomClassifier{
		Labels: []string{"Laptop", "Keyboard", "Mouse", "Monitor", "Webcam"},
		MaxQty: 50,
	}
}

func (r *RandomClassifier) Classify(_ context.Context, _ Upload) (domain.Prediction, error) {
	return domain.Prediction{
		ProductName:       r.Labels[rand.IntN(len(r.Labels))],
		EstimatedQuantity: rand.IntN(r.MaxQty) + 1,
	}, nil
}

type PredictionResult struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	ContentType string            `json:"content_type"`
	Prediction  domain.Prediction `json:"prediction"`
}

type PredictionService struct {
	Model Classifier
}

func NewPredictionService(model Classifier) *PredictionService {
	return &PredictionService{Model: model}
}

// Predict rejects non-image uploads and asks the model for a guess.
func (s *PredictionService) Predict(ctx context.Context, up Upload) (PredictionResult, error) {
	if !IsImage(up.ContentType) {
		return PredictionResult{}, ErrNotImage
	}
	p, err := s.Model.Classify(ctx, up)
	if err != nil {
		return PredictionResult{}, err
	}
	return PredictionResult{
		ID:          uuid.NewString(),
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Prediction:  p,
	}, nil
}

func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
