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

type SupplierRepo struct{ db *sqlx.DB }

func NewSupplierRepo(db *sqlx.DB) *SupplierRepo { return &SupplierRepo{db: db} }

const supplierCols = `id, name, contact_person, email, phone`

func (r *SupplierRepo) Get(ctx context.Context, id int64) (*domain.Supplier, error) {
	var out *domain.Supplier
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = getSupplier(ctx, tx, id)
		return err
	})
	return out, err
}

// List returns up to limit suppliers starting at offset, in id order.
func (r *SupplierRepo) List(ctx context.Context, offset, limit int) ([]domain.Supplier, error) {
	out := []domain.Supplier{}
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, `
			SELECT `+supplierCols+`
			FROM suppliers
			ORDER BY id
			LIMIT ? OFFSET ?
		`, limit, offset)
	})
	return out, err
}

func (r *SupplierRepo) Create(ctx context.Context, in domain.SupplierInput) (*domain.Supplier, error) {
	in, err := normalizeSupplier(in)
	if err != nil {
		return nil, err
	}
	var out *domain.Supplier
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO suppliers(name, contact_person, email, phone)
			VALUES (?, ?, ?, ?)
		`, in.Name, in.ContactPerson, in.Email, in.Phone)
		if err != nil {
			return classify(err, "supplier")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		out, err = getSupplier(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every column of the supplier. It returns (nil, nil) when id has no row.
func (r *SupplierRepo) Update(ctx context.Context, id int64, in domain.SupplierInput) (*domain.Supplier, error) {
	in, err := normalizeSupplier(in)
	if err != nil {
		return nil, err
	}
	var out *domain.Supplier
	err = inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE suppliers
			SET name = ?, contact_person = ?, email = ?, phone = ?
			WHERE id = ?
		`, in.Name, in.ContactPerson, in.Email, in.Phone, id)
		if err != nil {
			return classify(err, "supplier")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		out, err = getSupplier(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the supplier and returns it as it was. Suppliers still
// referenced by items are kept and ErrReferenceInUse is returned.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) (*domain.Supplier, error) {
	var out *domain.Supplier
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		s, err := getSupplier(ctx, tx, id)
		if err != nil || s == nil {
			return err
		}
		var refs int
		if err := tx.GetContext(ctx, &refs, `SELECT COUNT(*) FROM items WHERE supplier_id = ?`, id); err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: supplier %d is referenced by %d item(s)", domain.ErrReferenceInUse, id, refs)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id); err != nil {
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

func (r *SupplierRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.db, "suppliers") }

func getSupplier(ctx context.Context, q sqlx.QueryerContext, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	err := sqlx.GetContext(ctx, q, &s, `SELECT `+supplierCols+` FROM suppliers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// suppliersByID loads the given suppliers in one query, keyed by id.
func suppliersByID(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.Supplier, error) {
	out := make(map[int64]*domain.Supplier, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT `+supplierCols+` FROM suppliers WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	var rows []domain.Supplier
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func normalizeSupplier(in domain.SupplierInput) (domain.SupplierInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return in, invalid("supplier name is required")
	}
	if in.Email == "" {
		return in, invalid("supplier email is required")
	}
	return in, nil
}
