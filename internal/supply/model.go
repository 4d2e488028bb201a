package supply

import "time"

// Supply is one inventory row owned by a market vendor. ExpiryDays is the
// vendor's (or the vision model's) estimate at upload time; nothing in the
// system decrements it afterwards.
type Supply struct {
	ID            int        `json:"id"`
	ItemName      string     `json:"item_name"`
	Quantity      int        `json:"quantity"`
	Unit          string     `json:"unit"`
	QualityStatus string     `json:"quality_status"`
	ExpiryDays    int        `json:"expiry_days"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	PhotoURL      *string    `json:"photo_url,omitempty"`
	AINotes       *string    `json:"ai_notes,omitempty"`
	OwnerName     string     `json:"owner_name"`
	Location      string     `json:"location"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HasCoordinates reports whether the vendor shared real GPS data.
func (s *Supply) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// SupplyInput is the upload payload coming from the vendor frontend.
type SupplyInput struct {
	Name       string   `json:"name"`
	Qty        int      `json:"qty"`
	Unit       string   `json:"unit"`
	Freshness  string   `json:"freshness"`
	ExpiryDays int      `json:"expiry_days"`
	Note       *string  `json:"note"`
	OwnerName  string   `json:"owner_name"`
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	PhotoURL   *string  `json:"photo_url"`
	ExpiryDate *string  `json:"expiry_date"` // YYYY-MM-DD, computed from ExpiryDays when empty
}

// SearchResult is a supply row annotated with its (possibly simulated)
// position and the distance from the search origin.
type SearchResult struct {
	Supply
	DistanceKm   float64 `json:"distance_km"`
	LocationLat  float64 `json:"location_lat"`
	LocationLong float64 `json:"location_long"`
}
