package iot

import "time"

// SensorReading is one append-only log row from a storage sensor.
type SensorReading struct {
	ID          int       `json:"id"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	DeviceID    string    `json:"device_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LogRequest is the simulator's payload.
type LogRequest struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	DeviceID    string  `json:"device_id"`
}
