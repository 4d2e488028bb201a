package analytics

import "github.com/Azekhiel/Bekal-bangsa/internal/iot"

// KitchenStats feeds the SPPG dashboard header.
type KitchenStats struct {
	MealsFresh     int                `json:"meals_fresh"`
	MealsServed    int                `json:"meals_served"`
	AtRiskSupplies int                `json:"at_risk_supplies"`
	LatestReading  *iot.SensorReading `json:"latest_reading,omitempty"`
}

// VendorStats feeds the vendor dashboard for one owner.
type VendorStats struct {
	Owner           string `json:"owner"`
	ItemCount       int    `json:"item_count"`
	AtRiskCount     int    `json:"at_risk_count"`
	OrdersPending   int    `json:"orders_pending"`
	OrdersConfirmed int    `json:"orders_confirmed"`
	OrdersCompleted int    `json:"orders_completed"`
}
