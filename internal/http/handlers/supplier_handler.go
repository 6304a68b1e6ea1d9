package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warehouse/internal/domain"
	applog "warehouse/internal/log"
	"warehouse/internal/services"
	"warehouse/internal/validate"
)

type SupplierHandler struct {
	Inv *services.InventoryService
}

// GET /suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	skip, limit, ok := page(c)
	if !ok {
		return badRequest(c, "supplier.list", "skip and limit must be non-negative integers")
	}
	out, err := h.Inv.ListSuppliers(c.UserContext(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "supplier.get", "invalid supplier id")
	}
	s, err := h.Inv.GetSupplier(c.UserContext(), id)
	if err != nil {
		return fail(c, "Supplier", "supplier.get", err)
	}
	return c.JSON(s)
}

// POST /suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "supplier.create", msg)
	}
	s, err := h.Inv.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return fail(c, "Supplier", "supplier.create", err)
	}
	applog.Audit(c, "supplier.create", map[string]any{"supplier_id": s.ID, "name": s.Name})
	return c.JSON(s)
}

// PUT /suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "supplier.update", "invalid supplier id")
	}
	in, msg := h.parse(c)
	if msg != "" {
		return badRequest(c, "supplier.update", msg)
	}
	s, err := h.Inv.UpdateSupplier(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "Supplier", "supplier.update", err)
	}
	applog.Audit(c, "supplier.update", map[string]any{"supplier_id": s.ID})
	return c.JSON(s)
}

// DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "supplier.delete", "invalid supplier id")
	}
	s, err := h.Inv.DeleteSupplier(c.UserContext(), id)
	if err != nil {
		return fail(c, "Supplier", "supplier.delete", err)
	}
	applog.Audit(c, "supplier.delete", map[string]any{"supplier_id": s.ID})
	return c.JSON(s)
}

func (h *SupplierHandler) parse(c *fiber.Ctx) (domain.SupplierInput, string) {
	var in domain.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return in, "invalid request body"
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return in, "name is required (max 200 characters)"
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return in, "enter a valid email"
	}
	in.Name, in.Email = name, email
	return in, ""
}
