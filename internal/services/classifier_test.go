package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/domain"
	"warehouse/internal/services"
)

type fixedModel struct {
	p   domain.Prediction
	err error
}

func (f fixedModel) Classify(context.Context, services.Upload) (domain.Prediction, error) {
	return f.p, f.err
}

func TestRandomClassifierRange(t *testing.T) {
	m := services.NewRandomClassifier()
	for i := 0; i < 200; i++ {
		p, err := m.Classify(context.Background(), services.Upload{ContentType: "image/png"})
		require.NoError(t, err)
		assert.Contains(t, m.Labels, p.ProductName)
		assert.GreaterOrEqual(t, p.EstimatedQuantity, 1)
		assert.LessOrEqual(t, p.EstimatedQuantity, 50)
	}
}

func TestPredictRejectsNonImage(t *testing.T) {
	svc := services.NewPredictionService(services.NewRandomClassifier())
	_, err := svc.Predict(context.Background(), services.Upload{Filename: "a.txt", ContentType: "text/plain"})
	assert.ErrorIs(t, err, services.ErrNotImage)

	_, err = svc.Predict(context.Background(), services.Upload{Filename: "a"})
	assert.ErrorIs(t, err, services.ErrNotImage)
}

func TestPredictUsesModel(t *testing.T) {
	want := domain.Prediction{ProductName: "Monitor", EstimatedQuantity: 7}
	svc := services.NewPredictionService(fixedModel{p: want})

	res, err := svc.Predict(context.Background(), services.Upload{Filename: "m.jpg", ContentType: "Image/JPEG"})
	require.NoError(t, err)
	assert.Equal(t, want, res.Prediction)
	assert.Equal(t, "m.jpg", res.Filename)
	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)

	boom := errors.New("model offline")
	_, err = services.NewPredictionService(fixedModel{err: boom}).Predict(context.Background(), services.Upload{ContentType: "image/gif"})
	assert.ErrorIs(t, err, boom)
}
