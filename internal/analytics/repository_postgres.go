package analytics

import (
	"context"
	"errors"

	"github.com/Azekhiel/Bekal-bangsa/internal/iot"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) KitchenStats(ctx context.Context) (*KitchenStats, error) {
	stats := &KitchenStats{}

	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM meal_productions
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case "fresh":
			stats.MealsFresh = count
		case "served":
			stats.MealsServed = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM supplies WHERE expiry_days <= 2`,
	).Scan(&stats.AtRiskSupplies)
	if err != nil {
		return nil, err
	}

	var reading iot.SensorReading
	err = r.db.QueryRow(ctx, `
		SELECT id, temperature, humidity, device_id, created_at
		FROM iot_logs
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&reading.ID, &reading.Temperature, &reading.Humidity, &reading.DeviceID, &reading.CreatedAt)
	switch {
	case err == nil:
		stats.LatestReading = &reading
	case errors.Is(err, pgx.ErrNoRows):
		// no sensors yet
	default:
		return nil, err
	}

	return stats, nil
}

func (r *PostgresRepository) VendorStats(ctx context.Context, owner string) (*VendorStats, error) {
	stats := &VendorStats{Owner: owner}

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE expiry_days <= 2)
		FROM supplies
		WHERE owner_name = $1
	`, owner).Scan(&stats.ItemCount, &stats.AtRiskCount)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT o.status, COUNT(*)
		FROM orders o
		JOIN supplies s ON s.id = o.supply_id
		WHERE s.owner_name = $1
		GROUP BY o.status
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case "pending":
			stats.OrdersPending = count
		case "confirmed":
			stats.OrdersConfirmed = count
		case "completed":
			stats.OrdersCompleted = count
		}
	}
	return stats, rows.Err()
}
