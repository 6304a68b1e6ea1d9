package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warehouse/internal/validate"
)

func pathID(c *fiber.Ctx) (int64, bool) {
	return validate.ID(c.Params("id"))
}

// page reads skip/limit, defaulting and clamping limit.
func page(c *fiber.Ctx) (skip, limit int, ok bool) {
	skip, okSkip := validate.Skip(c.Query("skip"))
	limit, okLimit := validate.Limit(c.Query("limit"))
	return skip, limit, okSkip && okLimit
}
