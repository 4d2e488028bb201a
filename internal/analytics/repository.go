package analytics

import "context"

type Repository interface {
	KitchenStats(ctx context.Context) (*KitchenStats, error)
	VendorStats(ctx context.Context, owner string) (*VendorStats, error)
}
