package iot

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

func (r *PostgresRepository) Insert(ctx context.Context, reading *SensorReading) error {
	query := `
		INSERT INTO iot_logs (temperature, humidity, device_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		reading.Temperature,
		reading.Humidity,
		reading.DeviceID,
	).Scan(&reading.ID, &reading.CreatedAt)
}

func (r *PostgresRepository) Last(ctx context.Context, limit int) ([]*SensorReading, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, temperature, humidity, device_id, created_at
		FROM iot_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []*SensorReading
	for rows.Next() {
		var reading SensorReading
		if err := rows.Scan(&reading.ID, &reading.Temperature, &reading.Humidity, &reading.DeviceID, &reading.CreatedAt); err != nil {
			return nil, err
		}
		readings = append(readings, &reading)
	}
	return readings, rows.Err()
}
