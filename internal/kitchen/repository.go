package kitchen

import "context"

type Repository interface {
	// ConsumeAndRecord deletes the consumed supply rows and inserts the
	// production record in ONE transaction, so a crash can no longer leave
	// inventory decremented without a matching production row.
	ConsumeAndRecord(ctx context.Context, ingredientIDs []int, meal *MealProduction) error

	ListMeals(ctx context.Context) ([]*MealProduction, error)

	// MarkServed is idempotent: serving an already-served meal is a no-op.
	MarkServed(ctx context.Context, id int) (*MealProduction, error)

	// KitchenStock lists what the kitchen already bought (completed orders).
	KitchenStock(ctx context.Context, buyerName string) ([]StockLine, error)
}
