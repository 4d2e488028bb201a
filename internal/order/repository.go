package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int) (*Order, error)
	ListByBuyer(ctx context.Context, buyerName string) ([]*Order, error)

	// ListIncoming is the vendor-facing view, joined with supply details.
	ListIncoming(ctx context.Context) ([]*Order, error)

	UpdateStatus(ctx context.Context, id int, status Status) error
}
