package supply

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const supplyColumns = `
	id,
	item_name,
	quantity,
	unit,
	quality_status,
	expiry_days,
	expiry_date,
	photo_url,
	ai_notes,
	owner_name,
	location,
	latitude,
	longitude,
	created_at
`

// --------------------------------------------------
// Bulk insert (vendor upload)
// --------------------------------------------------
func (r *PostgresRepository) BulkInsert(ctx context.Context, items []*Supply) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO supplies (
			item_name, quantity, unit, quality_status,
			expiry_days, expiry_date, photo_url, ai_notes,
			owner_name, location, latitude, longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	for _, item := range items {
		if err := tx.QueryRow(ctx, query,
			item.ItemName,
			item.Quantity,
			item.Unit,
			item.QualityStatus,
			item.ExpiryDays,
			item.ExpiryDate,
			item.PhotoURL,
			item.AINotes,
			item.OwnerName,
			item.Location,
			item.Latitude,
			item.Longitude,
		).Scan(&item.ID, &item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Dashboard listing (newest first)
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Supply, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+supplyColumns+`
		FROM supplies
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSupplies(rows)
}

// --------------------------------------------------
// Keyword search (case-insensitive substring)
// --------------------------------------------------
func (r *PostgresRepository) SearchByName(ctx context.Context, keyword string) ([]*Supply, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+supplyColumns+`
		FROM supplies
		WHERE item_name ILIKE '%' || $1 || '%'
	`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSupplies(rows)
}

// --------------------------------------------------
// Near-expiry rows (notifier input)
// --------------------------------------------------
func (r *PostgresRepository) ListExpiring(ctx context.Context, maxDays int) ([]*Supply, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+supplyColumns+`
		FROM supplies
		WHERE expiry_days <= $1
		ORDER BY expiry_days ASC
	`, maxDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSupplies(rows)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerName string) ([]*Supply, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+supplyColumns+`
		FROM supplies
		WHERE owner_name = $1
		ORDER BY created_at DESC
	`, ownerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSupplies(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSupplies(rows rowScanner) ([]*Supply, error) {
	var supplies []*Supply

	for rows.Next() {
		var s Supply
		if err := rows.Scan(
			&s.ID,
			&s.ItemName,
			&s.Quantity,
			&s.Unit,
			&s.QualityStatus,
			&s.ExpiryDays,
			&s.ExpiryDate,
			&s.PhotoURL,
			&s.AINotes,
			&s.OwnerName,
			&s.Location,
			&s.Latitude,
			&s.Longitude,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		supplies = append(supplies, &s)
	}

	return supplies, rows.Err()
}
