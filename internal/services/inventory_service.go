package services

import (
	"context"

	"warehouse/internal/domain"
	"warehouse/internal/repos"
)

// InventoryService fronts the repositories for the HTTP boundary and turns
// absent rows into domain.ErrNotFound.
type InventoryService struct {
	Suppliers *repos.SupplierRepo
	Items     *repos.ItemRepo
	Shipments *repos.ShipmentRepo
}

func NewInventoryService(sup *repos.SupplierRepo, items *repos.ItemRepo, ships *repos.ShipmentRepo) *InventoryService {
	return &InventoryService{Suppliers: sup, Items: items, Shipments: ships}
}

func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// Suppliers

func (s *InventoryService) ListSuppliers(ctx context.Context, skip, limit int) ([]domain.Supplier, error) {
	return s.Suppliers.List(ctx, skip, limit)
}

func (s *InventoryService) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return found(s.Suppliers.Get(ctx, id))
}

func (s *InventoryService) CreateSupplier(ctx context.Context, in domain.SupplierInput) (*domain.Supplier, error) {
	return s.Suppliers.Create(ctx, in)
}

func (s *InventoryService) UpdateSupplier(ctx context.Context, id int64, in domain.SupplierInput) (*domain.Supplier, error) {
	return found(s.Suppliers.Update(ctx, id, in))
}

func (s *InventoryService) DeleteSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return found(s.Suppliers.Delete(ctx, id))
}

// Items

func (s *InventoryService) ListItems(ctx context.Context, skip, limit int) ([]domain.InventoryItem, error) {
	return s.Items.List(ctx, skip, limit)
}

func (s *InventoryService) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return found(s.Items.Get(ctx, id))
}

func (s *InventoryService) CreateItem(ctx context.Context, in domain.ItemInput) (*domain.InventoryItem, error) {
	return s.Items.Create(ctx, in)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int64, in domain.ItemInput) (*domain.InventoryItem, error) {
	return found(s.Items.Update(ctx, id, in))
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return found(s.Items.Delete(ctx, id))
}

// Shipments

func (s *InventoryService) ListShipments(ctx context.Context, skip, limit int) ([]domain.Shipment, error) {
	return s.Shipments.List(ctx, skip, limit)
}

func (s *InventoryService) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	return found(s.Shipments.Get(ctx, id))
}

func (s *InventoryService) CreateShipment(ctx context.Context, in domain.ShipmentInput) (*domain.Shipment, error) {
	return s.Shipments.Create(ctx, in)
}

func (s *InventoryService) UpdateShipment(ctx context.Context, id int64, in domain.ShipmentInput) (*domain.Shipment, error) {
	return found(s.Shipments.Update(ctx, id, in))
}

func (s *InventoryService) DeleteShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	return found(s.Shipments.Delete(ctx, id))
}
