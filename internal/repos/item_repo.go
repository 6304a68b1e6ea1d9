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

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemCols = `id, name, quantity, category, price, supplier_id`

// Get returns the item with its supplier attached, or (nil, nil) when absent.
func (r *ItemRepo) Get(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = getItem(ctx, tx, id)
		return err
	})
	return out, err
}

// List returns up to limit items starting at offset, in id order, suppliers attached.
func (r *ItemRepo) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = listItems(ctx, tx, offset, limit)
		return err
	})
	return out, err
}

func listItems(ctx context.Context, q sqlx.QueryerContext, offset, limit int) ([]domain.InventoryItem, error) {
	out := []domain.InventoryItem{}
	if err := sqlx.SelectContext(ctx, q, &out, `
		SELECT `+itemCols+`
		FROM items
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, offset); err != nil {
		return nil, err
	}
	if err := attachSuppliers(ctx, q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the item. An unknown supplier_id is rejected by the store's
// foreign key and reported as ErrReferenceNotFound.
func (r *ItemRepo) Create(ctx context.Context, in domain.ItemInput) (*domain.InventoryItem, error) {
	in, err := normalizeItem(in)
	if err != nil {
		return nil, err
	}
	var out *domain.InventoryItem
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO items(name, quantity, category, price, supplier_id)
			VALUES (?, ?, ?, ?, ?)
		`, in.Name, in.Quantity, in.Category, in.Price, in.SupplierID)
		if err != nil {
			return classify(err, supplierRefMsg(in.SupplierID))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		out, err = getItem(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every column of the item. It returns (nil, nil) when id has no row.
func (r *ItemRepo) Update(ctx context.Context, id int64, in domain.ItemInput) (*domain.InventoryItem, error) {
	in, err := normalizeItem(in)
	if err != nil {
		return nil, err
	}
	var out *domain.InventoryItem
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE items
			SET name = ?, quantity = ?, category = ?, price = ?, supplier_id = ?
			WHERE id = ?
		`, in.Name, in.Quantity, in.Category, in.Price, in.SupplierID, id)
		if err != nil {
			return classify(err, supplierRefMsg(in.SupplierID))
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		out, err = getItem(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the item and returns it as it was. Items with shipments are
// kept and ErrReferenceInUse is returned.
func (r *ItemRepo) Delete(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		it, err := getItem(ctx, tx, id)
		if err != nil || it == nil {
			return err
		}
		var refs int
		if err := tx.GetContext(ctx, &refs, `SELECT COUNT(*) FROM shipments WHERE item_id = ?`, id); err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: item %d is referenced by %d shipment(s)", domain.ErrReferenceInUse, id, refs)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ItemRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.db, "items") }

func getItem(ctx context.Context, q sqlx.QueryerContext, id int64) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := sqlx.GetContext(ctx, q, &it, `SELECT `+itemCols+` FROM items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	one := []domain.InventoryItem{it}
	if err := attachSuppliers(ctx, q, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// itemsByID loads the given items with their suppliers, keyed by id.
func itemsByID(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.InventoryItem, error) {
	out := make(map[int64]*domain.InventoryItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT `+itemCols+` FROM items WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	var rows []domain.InventoryItem
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	if err := attachSuppliers(ctx, q, rows); err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

// attachSuppliers resolves every item's supplier with one batched lookup.
func attachSuppliers(ctx context.Context, q sqlx.QueryerContext, items []domain.InventoryItem) error {
	var ids []int64
	for _, it := range items {
		if it.SupplierID != nil {
			ids = append(ids, *it.SupplierID)
		}
	}
	sups, err := suppliersByID(ctx, q, uniqueIDs(ids))
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].SupplierID != nil {
			items[i].Supplier = sups[*items[i].SupplierID]
		}
	}
	return nil
}

func normalizeItem(in domain.ItemInput) (domain.ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, invalid("item name is required")
	}
	return in, nil
}

func supplierRefMsg(id *int64) string {
	if id == nil {
		return "supplier"
	}
	return fmt.Sprintf("supplier %d", *id)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
