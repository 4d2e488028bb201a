package kitchen

import (
	"fmt"
	"time"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
)

// MealStatus is a closed enum: fresh -> served, nothing else. "Expired" is a
// dashboard-side computation against ExpiryDatetime, never a stored state.
type MealStatus string

const (
	MealFresh  MealStatus = "fresh"
	MealServed MealStatus = "served"
)

// MealProduction is one batch of cooked meals.
type MealProduction struct {
	ID             int        `json:"id"`
	MenuName       string     `json:"menu_name"`
	QtyProduced    int        `json:"qty_produced"`
	ExpiryDatetime time.Time  `json:"expiry_datetime"`
	Status         MealStatus `json:"status"`
	StorageTips    string     `json:"storage_tips"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CookRequest records a production run: what was cooked, how many portions,
// and which warehouse rows were consumed.
type CookRequest struct {
	MenuName       string `json:"menu_name"`
	QtyProduced    int    `json:"qty_produced"`
	IngredientsIDs []int  `json:"ingredients_ids"`
}

// CookResult is the success payload: the production row plus the safety and
// nutrition analysis (AI-sourced or conservative default).
type CookResult struct {
	Status            string                `json:"status"`
	Message           string                `json:"message"`
	NutritionEstimate ai.Nutrition          `json:"nutrition_estimate"`
	SafetyAnalysis    *ai.ShelfLifeAnalysis `json:"safety_analysis"`
	Production        *MealProduction       `json:"production"`
}

// StockLine is one warehouse entry for the chef chatbot's context.
type StockLine struct {
	ItemName      string
	Unit          string
	QualityStatus string
	QtyOrdered    int
}

func (l StockLine) String() string {
	return fmt.Sprintf("- %s: %d %s (Kualitas: %s)",
		l.ItemName, l.QtyOrdered, l.Unit, l.QualityStatus)
}

// ChatRequest is the chef chatbot payload. Coordinates default to the
// Jakarta reference point when the kitchen never shared GPS.
type ChatRequest struct {
	Message   string   `json:"message"`
	BuyerName string   `json:"buyer_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
