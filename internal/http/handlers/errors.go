package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"warehouse/internal/domain"
	applog "warehouse/internal/log"
	"warehouse/internal/services"
)

const friendlyError = "Something went wrong. Please try again."

// ErrorHandler is the app-wide fallback. Client errors raised as *fiber.Error
// keep their message; everything else is logged and hidden behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, "server.error", err, nil)
	return c.JSON(fiber.Map{"error": friendlyError})
}

// fail maps domain errors to responses. Unknown errors go back to ErrorHandler.
func fail(c *fiber.Ctx, entity, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": entity + " not found"})
	case errors.Is(err, domain.ErrReferenceNotFound),
		errors.Is(err, domain.ErrDuplicateOrInvalid),
		errors.Is(err, services.ErrNotImage):
		c.Status(fiber.StatusBadRequest)
		applog.Security(c, action+".reject", map[string]any{"reason": err.Error()})
		return c.JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrReferenceInUse):
		c.Status(fiber.StatusConflict)
		applog.Security(c, action+".conflict", map[string]any{"reason": err.Error()})
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return err
}

func badRequest(c *fiber.Ctx, action, msg string) error {
	c.Status(fiber.StatusBadRequest)
	applog.Security(c, action+".reject", map[string]any{"reason": msg})
	return c.JSON(fiber.Map{"error": msg})
}
