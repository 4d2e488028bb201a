package kitchen

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("meal production not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Consume ingredients + record production (one tx)
// --------------------------------------------------
func (r *PostgresRepository) ConsumeAndRecord(
	ctx context.Context,
	ingredientIDs []int,
	meal *MealProduction,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Rows already consumed by a concurrent cook simply match nothing;
	// the original tolerated that and the dashboards rely on it.
	if len(ingredientIDs) > 0 {
		if _, err := tx.Exec(ctx, `
			DELETE FROM supplies
			WHERE id = ANY($1)
		`, ingredientIDs); err != nil {
			return err
		}
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO meal_productions (menu_name, qty_produced, expiry_datetime, status, storage_tips)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		meal.MenuName,
		meal.QtyProduced,
		meal.ExpiryDatetime,
		meal.Status,
		meal.StorageTips,
	).Scan(&meal.ID, &meal.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Meal listing (newest first)
// --------------------------------------------------
func (r *PostgresRepository) ListMeals(ctx context.Context) ([]*MealProduction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_name, qty_produced, expiry_datetime, status, storage_tips, created_at
		FROM meal_productions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []*MealProduction
	for rows.Next() {
		var m MealProduction
		if err := rows.Scan(
			&m.ID, &m.MenuName, &m.QtyProduced, &m.ExpiryDatetime,
			&m.Status, &m.StorageTips, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		meals = append(meals, &m)
	}

	return meals, rows.Err()
}

// --------------------------------------------------
// Idempotent serve
// --------------------------------------------------
func (r *PostgresRepository) MarkServed(ctx context.Context, id int) (*MealProduction, error) {
	var m MealProduction
	err := r.db.QueryRow(ctx, `
		UPDATE meal_productions
		SET status = 'served'
		WHERE id = $1
		RETURNING id, menu_name, qty_produced, expiry_datetime, status, storage_tips, created_at
	`, id).Scan(
		&m.ID, &m.MenuName, &m.QtyProduced, &m.ExpiryDatetime,
		&m.Status, &m.StorageTips, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// --------------------------------------------------
// Chef context: what the kitchen already bought
// --------------------------------------------------
func (r *PostgresRepository) KitchenStock(ctx context.Context, buyerName string) ([]StockLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.item_name, s.unit, s.quality_status, o.qty_ordered
		FROM orders o
		JOIN supplies s ON s.id = o.supply_id
		WHERE o.buyer_name = $1
		  AND o.status = 'completed'
	`, buyerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []StockLine
	for rows.Next() {
		var l StockLine
		if err := rows.Scan(&l.ItemName, &l.Unit, &l.QualityStatus, &l.QtyOrdered); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
