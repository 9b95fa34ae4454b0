package repository

import (
	"context"
	"sync"

	"github.com/petstore-samples/service-petstore/internal/domain"
	"github.com/petstore-samples/service-petstore/internal/domain/order"
	"github.com/petstore-samples/service-petstore/internal/domain/pet"
	"github.com/petstore-samples/service-petstore/internal/store"
)

// InMemoryOrderRepository owns the order table. It holds a read-only pet
// finder for referential checks; pet lookups take only the pet repository's
// read lock, so Order→Pet calls cannot deadlock against a concurrent pet
// write.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders *store.EntityStore[int64, order.Order]
	pets   pet.PetFinder
}

// NewInMemoryOrderRepository creates an order repository over the given
// table with the given pet finder.
func NewInMemoryOrderRepository(orders *store.EntityStore[int64, order.Order], pets pet.PetFinder) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: orders, pets: pets}
}

// FindAllOrders returns a snapshot of every order in ascending id order.
func (r *InMemoryOrderRepository) FindAllOrders(_ context.Context) []order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders.All()
}

// FindOrderByID returns the order with the given id.
func (r *InMemoryOrderRepository) FindOrderByID(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findOrderByID(id)
}

// SaveOrder validates that the referenced pet exists, then stores or fully
// replaces the order keyed by its id. A failed pet lookup propagates
// unmodified and nothing is stored.
func (r *InMemoryOrderRepository) SaveOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.pets.FindByID(ctx, o.PetID); err != nil {
		return nil, err
	}
	stored := r.orders.Put(o.ID, o)
	return &stored, nil
}

// UpdateOrder validates the referenced pet exactly as SaveOrder, then
// resolves the existing order by id and overwrites every field except the
// id. It never creates on miss.
func (r *InMemoryOrderRepository) UpdateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.pets.FindByID(ctx, o.PetID); err != nil {
		return nil, err
	}
	existing, err := r.findOrderByID(o.ID)
	if err != nil {
		return nil, err
	}
	existing.PetID = o.PetID
	existing.Quantity = o.Quantity
	existing.ShipDate = o.ShipDate
	existing.Status = o.Status
	existing.Complete = o.Complete
	updated := r.orders.Put(existing.ID, *existing)
	return &updated, nil
}

// DeleteOrderByID resolves the order by id and removes it.
func (r *InMemoryOrderRepository) DeleteOrderByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findOrderByID(id)
	if err != nil {
		return err
	}
	r.orders.Remove(existing.ID)
	return nil
}

// GetInventoryByStatus returns a census of the pet collection: one entry per
// pet status actually present, mapped to the count of pets in it. The counts
// sum to the total pet count.
func (r *InMemoryOrderRepository) GetInventoryByStatus(ctx context.Context) map[string]int {
	inventory := make(map[string]int)
	for _, p := range r.pets.FindAll(ctx) {
		inventory[string(p.Status)]++
	}
	return inventory
}

// DeleteAllOrders clears the order table.
func (r *InMemoryOrderRepository) DeleteAllOrders(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders.Clear()
}

func (r *InMemoryOrderRepository) findOrderByID(id int64) (*order.Order, error) {
	o, ok := r.orders.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.OrderNotFoundMsg, id)
	}
	return &o, nil
}
