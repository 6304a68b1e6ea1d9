package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"warehouse/internal/domain"
)

// Snapshot is one consistent read of the store: the counts always describe
// the same rows the lists were cut from.
type Snapshot struct {
	SupplierCount int
	ItemCount     int
	ShipmentCount int
	Items         []domain.InventoryItem
	Shipments     []domain.Shipment
}

type SnapshotRepo struct{ db *sqlx.DB }

func NewSnapshotRepo(db *sqlx.DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Load reads the three counts and the first limit items and shipments
// (suppliers attached) inside a single transaction.
func (r *SnapshotRepo) Load(ctx context.Context, limit int) (Snapshot, error) {
	var out Snapshot
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		if out.SupplierCount, err = count(ctx, tx, "suppliers"); err != nil {
			return err
		}
		if out.ItemCount, err = count(ctx, tx, "items"); err != nil {
			return err
		}
		if out.ShipmentCount, err = count(ctx, tx, "shipments"); err != nil {
			return err
		}
		if out.Items, err = listItems(ctx, tx, 0, limit); err != nil {
			return err
		}
		out.Shipments, err = listShipments(ctx, tx, 0, limit)
		return err
	})
	if err != nil {
		return Snapshot{}, err
	}
	return out, nil
}
