package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warehouse/internal/domain"
	applog "warehouse/internal/log"
	"warehouse/internal/services"
)

type ShipmentHandler struct {
	Inv *services.InventoryService
}

// GET /shipments
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	skip, limit, ok := page(c)
	if !ok {
		return badRequest(c, "shipment.list", "skip and limit must be non-negative integers")
	}
	out, err := h.Inv.ListShipments(c.UserContext(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /shipments/:id
func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "shipment.get", "invalid shipment id")
	}
	s, err := h.Inv.GetShipment(c.UserContext(), id)
	if err != nil {
		return fail(c, "Shipment", "shipment.get", err)
	}
	return c.JSON(s)
}

// POST /shipments
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "shipment.create", msg)
	}
	s, err := h.Inv.CreateShipment(c.UserContext(), in)
	if err != nil {
		return fail(c, "Shipment", "shipment.create", err)
	}
	applog.Audit(c, "shipment.create", map[string]any{"shipment_id": s.ID, "item_id": s.ItemID, "qty": s.Quantity})
	return c.JSON(s)
}

// PUT /shipments/:id
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "shipment.update", "invalid shipment id")
	}
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "shipment.update", msg)
	}
	s, err := h.Inv.UpdateShipment(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "Shipment", "shipment.update", err)
	}
	applog.Audit(c, "shipment.update", map[string]any{"shipment_id": s.ID, "status": s.Status})
	return c.JSON(s)
}

// DELETE /shipments/:id
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "shipment.delete", "invalid shipment id")
	}
	s, err := h.Inv.DeleteShipment(c.UserContext(), id)
	if err != nil {
		return fail(c, "Shipment", "shipment.delete", err)
	}
	applog.Audit(c, "shipment.delete", map[string]any{"shipment_id": s.ID})
	return c.JSON(s)
}

func (h *ShipmentHandler) parse(c *fiber.Ctx) (domain.ShipmentInput, string) {
	var in domain.ShipmentInput
	if err := c.BodyParser(&in); err != nil {
		// Date.UnmarshalJSON errors land here too
		return in, "invalid request body: " + err.Error()
	}
	if in.Quantity < 0 {
		return in, "quantity must be zero or more"
	}
	return in, ""
}
