package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warehouse/internal/services"
	"warehouse/internal/validate"
)

type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

// GET /analytics/low_stock_alerts?threshold=
func (h *AnalyticsHandler) LowStock(c *fiber.Ctx) error {
	threshold, ok := validate.Threshold(c.Query("threshold"))
	if !ok {
		return badRequest(c, "analytics.low_stock", "threshold must be an integer")
	}
	items, err := h.Analytics.LowStock(c.UserContext(), threshold)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GET /analytics/stock_by_category
func (h *AnalyticsHandler) StockByCategory(c *fiber.Ctx) error {
	out, err := h.Analytics.StockByCategory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /analytics/daily_shipments
func (h *AnalyticsHandler) DailyShipments(c *fiber.Ctx) error {
	out, err := h.Analytics.DailyShipments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
