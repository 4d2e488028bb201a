package notify

import (
	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/supply"
)

// Notification is one advisory message. Nothing delivers or persists these;
// the dashboard renders them as a WhatsApp simulation.
type Notification struct {
	To      string `json:"to"`
	Role    string `json:"role"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	TypeUrgentSale   = "URGENT_SALE"
	TypeRescueRecipe = "RESCUE_RECIPE"
)

// Result is the trigger payload: the ordered message feed plus the raw
// at-risk rows and rescue menu for the kitchen dashboard widgets.
type Result struct {
	Status        string                 `json:"status"`
	Messages      []Notification         `json:"messages"`
	ExpiringItems []*supply.Supply       `json:"expiring_items"`
	RescueMenu    *ai.MenuRecommendation `json:"rescue_menu,omitempty"`
}
