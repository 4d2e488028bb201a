package geo

import (
	"hash/fnv"
	"math"
	"strconv"
)

const earthRadiusKm = 6371

// Default reference point: Monas, Central Jakarta.
// Used as the search origin when the caller sends no coordinates and as the
// kitchen hub location for distance hints in notifications.
const (
	MonasLat  = -6.175392
	MonasLong = 106.827153
)

// Haversine returns the great-circle distance between two points in km.
// Inputs are degrees. No validation: garbage in, garbage out.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// JitterAround returns a simulated coordinate within ±0.05 degrees of the
// given reference, derived from the row id so the same item always lands on
// the same spot. Used for supplies that were uploaded without GPS data.
func JitterAround(refLat, refLong float64, id int) (float64, float64) {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(id)))
	sum := h.Sum64()

	// Two independent offsets in [-0.05, 0.05).
	latOff := (float64(sum&0xFFFF)/0xFFFF - 0.5) * 0.1
	longOff := (float64((sum>>16)&0xFFFF)/0xFFFF - 0.5) * 0.1

	return refLat + latOff, refLong + longOff
}
