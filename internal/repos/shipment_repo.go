package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"warehouse/internal/domain"
)

type ShipmentRepo struct{ db *sqlx.DB }

func NewShipmentRepo(db *sqlx.DB) *ShipmentRepo { return &ShipmentRepo{db: db} }

const shipmentCols = `id, item_id, quantity, origin, destination, status, estimated_delivery_date`

// Get returns the shipment with its item and the item's supplier attached,
// or (nil, nil) when absent.
func (r *ShipmentRepo) Get(ctx context.Context, id int64) (*domain.Shipment, error) {
	var out *domain.Shipment
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = getShipment(ctx, tx, id)
		return err
	})
	return out, err
}

func (r *ShipmentRepo) List(ctx context.Context, offset, limit int) ([]domain.Shipment, error) {
	var out []domain.Shipment
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = listShipments(ctx, tx, offset, limit)
		return err
	})
	return out, err
}

func listShipments(ctx context.Context, q sqlx.QueryerContext, offset, limit int) ([]domain.Shipment, error) {
	out := []domain.Shipment{}
	if err := sqlx.SelectContext(ctx, q, &out, `
		SELECT `+shipmentCols+`
		FROM shipments
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, offset); err != nil {
		return nil, err
	}
	if err := attachItems(ctx, q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create checks that the referenced item exists before inserting, so a bad
// item_id surfaces as ErrReferenceNotFound rather than a constraint failure.
func (r *ShipmentRepo) Create(ctx context.Context, in domain.ShipmentInput) (*domain.Shipment, error) {
	in, err := normalizeShipment(in)
	if err != nil {
		return nil, err
	}
	var out *domain.Shipment
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := requireItem(ctx, tx, in.ItemID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO shipments(item_id, quantity, origin, destination, status, estimated_delivery_date)
			VALUES (?, ?, ?, ?, ?, ?)
		`, in.ItemID, in.Quantity, in.Origin, in.Destination, in.Status, in.EstimatedDeliveryDate)
		if err != nil {
			return classify(err, fmt.Sprintf("item %d", in.ItemID))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		out, err = getShipment(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every column of the shipment. A missing shipment yields
// (nil, nil); otherwise item_id is re-validated like on Create.
func (r *ShipmentRepo) Update(ctx context.Context, id int64, in domain.ShipmentInput) (*domain.Shipment, error) {
	in, err := normalizeShipment(in)
	if err != nil {
		return nil, err
	}
	var out *domain.Shipment
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM shipments WHERE id = ?)`, id); err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if err := requireItem(ctx, tx, in.ItemID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE shipments
			SET item_id = ?, quantity = ?, origin = ?, destination = ?, status = ?, estimated_delivery_date = ?
			WHERE id = ?
		`, in.ItemID, in.Quantity, in.Origin, in.Destination, in.Status, in.EstimatedDeliveryDate, id); err != nil {
			return classify(err, fmt.Sprintf("item %d", in.ItemID))
		}
		out, err = getShipment(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the shipment and returns it as it was, or (nil, nil) when absent.
func (r *ShipmentRepo) Delete(ctx context.Context, id int64) (*domain.Shipment, error) {
	var out *domain.Shipment
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		s, err := getShipment(ctx, tx, id)
		if err != nil || s == nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM shipments WHERE id = ?`, id); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ShipmentRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.db, "shipments") }

func getShipment(ctx context.Context, q sqlx.QueryerContext, id int64) (*domain.Shipment, error) {
	var s domain.Shipment
	err := sqlx.GetContext(ctx, q, &s, `SELECT `+shipmentCols+` FROM shipments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	one := []domain.Shipment{s}
	if err := attachItems(ctx, q, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// attachItems resolves every shipment's item (and its supplier) with batched lookups.
func attachItems(ctx context.Context, q sqlx.QueryerContext, shipments []domain.Shipment) error {
	ids := make([]int64, 0, len(shipments))
	for _, s := range shipments {
		ids = append(ids, s.ItemID)
	}
	items, err := itemsByID(ctx, q, uniqueIDs(ids))
	if err != nil {
		return err
	}
	for i := range shipments {
		shipments[i].Item = items[shipments[i].ItemID]
	}
	return nil
}

func requireItem(ctx context.Context, q sqlx.QueryerContext, itemID int64) error {
	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, `SELECT EXISTS(SELECT 1 FROM items WHERE id = ?)`, itemID); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: item %d", domain.ErrReferenceNotFound, itemID)
	}
	return nil
}

func normalizeShipment(in domain.ShipmentInput) (domain.ShipmentInput, error) {
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = domain.DefaultShipmentStatus
	}
	if in.EstimatedDeliveryDate.IsZero() {
		return in, invalid("estimated_delivery_date is required")
	}
	return in, nil
}
