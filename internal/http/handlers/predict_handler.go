package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	applog "warehouse/internal/log"
	"warehouse/internal/services"
)

type PredictHandler struct {
	Predict *services.PredictionService
}

// POST /predict_image (multipart field "file")
func (h *PredictHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "predict.image", "missing file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := h.Predict.Predict(c.UserContext(), services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return fail(c, "Prediction", "predict.image", err)
	}
	applog.Info(c, "predict.image", map[string]any{
		"prediction_id": res.ID,
		"bytes":         len(data),
		"product":       res.Prediction.ProductName,
	})
	return c.JSON(res)
}
