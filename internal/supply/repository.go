package supply

import "context"

type Repository interface {
	BulkInsert(ctx context.Context, items []*Supply) error
	ListAll(ctx context.Context) ([]*Supply, error)
	SearchByName(ctx context.Context, keyword string) ([]*Supply, error)

	// ListExpiring returns rows with expiry_days <= maxDays (notifier input).
	ListExpiring(ctx context.Context, maxDays int) ([]*Supply, error)

	// ListByOwner powers the vendor dashboard.
	ListByOwner(ctx context.Context, ownerName string) ([]*Supply, error)
}
