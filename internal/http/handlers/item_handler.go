package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warehouse/internal/domain"
	applog "warehouse/internal/log"
	"warehouse/internal/services"
	"warehouse/internal/validate"
)

type ItemHandler struct {
	Inv *services.InventoryService
}

// GET /items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	skip, limit, ok := page(c)
	if !ok {
		return badRequest(c, "item.list", "skip and limit must be non-negative integers")
	}
	out, err := h.Inv.ListItems(c.UserContext(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /items/:id
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "item.get", "invalid item id")
	}
	it, err := h.Inv.GetItem(c.UserContext(), id)
	if err != nil {
		return fail(c, "Item", "item.get", err)
	}
	return c.JSON(it)
}

// POST /items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "item.create", msg)
	}
	it, err := h.Inv.CreateItem(c.UserContext(), in)
	if err != nil {
		return fail(c, "Item", "item.create", err)
	}
	applog.Audit(c, "item.create", map[string]any{"item_id": it.ID, "name": it.Name, "qty": it.Quantity})
	return c.JSON(it)
}

// PUT /items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "item.update", "invalid item id")
	}
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "item.update", msg)
	}
	it, err := h.Inv.UpdateItem(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "Item", "item.update", err)
	}
	applog.Audit(c, "item.update", map[string]any{"item_id": it.ID, "qty": it.Quantity})
	return c.JSON(it)
}

// DELETE /items/:id
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "item.delete", "invalid item id")
	}
	it, err := h.Inv.DeleteItem(c.UserContext(), id)
	if err != nil {
		return fail(c, "Item", "item.delete", err)
	}
	applog.Audit(c, "item.delete", map[string]any{"item_id": it.ID})
	return c.JSON(it)
}

func (h *ItemHandler) parse(c *fiber.Ctx) (domain.ItemInput, string) {
	var in domain.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return in, "invalid request body"
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return in, "name is required (max 200 characters)"
	}
	if in.Quantity < 0 {
		return in, "quantity must be zero or more"
	}
	if in.Price.IsNegative() {
		return in, "price must be zero or more"
	}
	in.Name = name
	return in, ""
}
