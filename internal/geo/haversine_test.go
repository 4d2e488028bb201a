package geo

import (
	"math"
	"testing"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	d := Haversine(MonasLat, MonasLong, MonasLat, MonasLong)
	if d != 0 {
		t.Errorf("expected 0 km, got %f", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{-6.175392, 106.827153, -6.2, 106.8},
		{0, 0, 10, 10},
		{-89.9, 179.9, 89.9, -179.9},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("not symmetric: %f vs %f for %v", ab, ba, p)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Monas to Bandung city center, roughly 116 km.
	d := Haversine(MonasLat, MonasLong, -6.914744, 107.609810)
	if d < 110 || d > 125 {
		t.Errorf("Jakarta-Bandung distance out of range: %f km", d)
	}
}

func TestJitterAroundIsDeterministic(t *testing.T) {
	lat1, long1 := JitterAround(MonasLat, MonasLong, 42)
	lat2, long2 := JitterAround(MonasLat, MonasLong, 42)

	if lat1 != lat2 || long1 != long2 {
		t.Fatalf("same id produced different coordinates: (%f,%f) vs (%f,%f)",
			lat1, long1, lat2, long2)
	}
}

func TestJitterAroundStaysInBounds(t *testing.T) {
	for id := 0; id < 500; id++ {
		lat, long := JitterAround(MonasLat, MonasLong, id)
		if math.Abs(lat-MonasLat) > 0.05 || math.Abs(long-MonasLong) > 0.05 {
			t.Errorf("id %d jittered out of bounds: (%f, %f)", id, lat, long)
		}
	}
}
