package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	applog "warehouse/internal/log"
	"warehouse/internal/services"
	"warehouse/internal/validate"
)

type DashboardHandler struct {
	Analytics *services.AnalyticsService
}

type countRow struct {
	Key   string
	Count int
}

// GET /
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	// a malformed threshold falls back to the default
	threshold, _ := validate.Threshold(c.Query("threshold"))
	sum, err := h.Analytics.Summary(c.UserContext(), threshold)
	if err != nil {
		applog.Error(c, "dashboard.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "dashboard", fiber.Map{
		"Summary":    sum,
		"Categories": sortedCounts(sum.StockByCategory),
		"Days":       sortedCounts(sum.DailyShipments),
	})
}

// sortedCounts orders map entries by key so the page is stable between loads.
func sortedCounts(m map[string]int) []countRow {
	out := make([]countRow, 0, len(m))
	for k, v := range m {
		out = append(out, countRow{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
