package order

import "context"

// OrderRepository defines the operations of the order table's exclusive
// owner. Save and update perform the pet-existence check before committing.
type OrderRepository interface {
	FindAllOrders(ctx context.Context) []Order
	FindOrderByID(ctx context.Context, id int64) (*Order, error)
	SaveOrder(ctx context.Context, o Order) (*Order, error)
	UpdateOrder(ctx context.Context, o Order) (*Order, error)
	DeleteOrderByID(ctx context.Context, id int64) error

	// GetInventoryByStatus returns a census of the pet collection: one entry
	// per pet status actually present, mapped to the count of pets in it.
	GetInventoryByStatus(ctx context.Context) map[string]int

	// DeleteAllOrders clears the order table. Exposed for state reset only.
	DeleteAllOrders(ctx context.Context)
}
