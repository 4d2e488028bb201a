package db

import (
	"strings"
	"testing"
)

// Cooking deletes consumed supply rows while their orders remain as history.
// A foreign key from orders.supply_id would reject that delete (SQLSTATE
// 23503) for exactly the supplies the kitchen bought, so the orders table
// must keep the reference loose.
func TestOrdersKeepLooseSupplyReference(t *testing.T) {
	if strings.Contains(ordersSchema, "REFERENCES") {
		t.Fatalf("orders.supply_id must not be a foreign key:\n%s", ordersSchema)
	}
}

func TestNoSchemaConstrainsSupplies(t *testing.T) {
	for _, ddl := range []string{usersSchema, ordersSchema, mealProductionsSchema, iotLogsSchema} {
		if strings.Contains(ddl, "REFERENCES supplies") {
			t.Errorf("schema references the hard-deleted supplies table:\n%s", ddl)
		}
	}
}
