package iot

import "context"

type Repository interface {
	Insert(ctx context.Context, reading *SensorReading) error

	// Last returns at most limit readings, newest first.
	Last(ctx context.Context, limit int) ([]*SensorReading, error)
}
