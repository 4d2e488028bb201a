package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("order not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (supply_id, qty_ordered, buyer_name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		o.SupplyID,
		o.QtyOrdered,
		o.BuyerName,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, supply_id, qty_ordered, buyer_name, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID, &o.SupplyID, &o.QtyOrdered, &o.BuyerName, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListByBuyer(ctx context.Context, buyerName string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			o.id, o.supply_id, o.qty_ordered, o.buyer_name, o.status,
			o.created_at, o.updated_at,
			s.item_name, s.unit, s.owner_name
		FROM orders o
		JOIN supplies s ON s.id = o.supply_id
		WHERE o.buyer_name = $1
		ORDER BY o.created_at DESC
	`, buyerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows, true)
}

func (r *PostgresRepository) ListIncoming(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			o.id, o.supply_id, o.qty_ordered, o.buyer_name, o.status,
			o.created_at, o.updated_at,
			s.item_name, s.unit, s.owner_name
		FROM orders o
		JOIN supplies s ON s.id = o.supply_id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows, true)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOrders(rows pgx.Rows, joined bool) ([]*Order, error) {
	var orders []*Order

	for rows.Next() {
		var o Order
		dest := []any{
			&o.ID, &o.SupplyID, &o.QtyOrdered, &o.BuyerName, &o.Status,
			&o.CreatedAt, &o.UpdatedAt,
		}
		if joined {
			dest = append(dest, &o.ItemName, &o.Unit, &o.OwnerName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}
