package order

import (
	"fmt"
	"time"
)

// Status is a closed enum. The only legal path is
// pending -> confirmed -> completed; anything else is rejected.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

var transitions = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusCompleted,
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// CanTransitionTo reports whether next is the legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return transitions[s] == next
}

// Order links a buyer (SPPG kitchen) to a vendor's supply row.
type Order struct {
	ID         int       `json:"id"`
	SupplyID   int       `json:"supply_id"`
	QtyOrdered int       `json:"qty_ordered"`
	BuyerName  string    `json:"buyer_name"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Joined from supplies for the vendor's incoming-orders view.
	ItemName  string `json:"item_name,omitempty"`
	Unit      string `json:"unit,omitempty"`
	OwnerName string `json:"owner_name,omitempty"`
}

// CreateRequest is the inbound payload for a new order.
type CreateRequest struct {
	SupplyID   int    `json:"supply_id"`
	QtyOrdered int    `json:"qty_ordered"`
	BuyerName  string `json:"buyer_name"`
}
