package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/petstore-samples/service-petstore/internal/domain/order"
)

// StoreService orchestrates order use cases. Every validation lives in the
// repository (pet-existence checks included); errors propagate unmodified.
type StoreService struct {
	repo   order.OrderRepository
	logger *zap.Logger
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo order.OrderRepository, logger *zap.Logger) *StoreService {
	return &StoreService{repo: repo, logger: logger}
}

// FindAllOrders returns every order.
func (s *StoreService) FindAllOrders(ctx context.Context) []order.Order {
	return s.repo.FindAllOrders(ctx)
}

// FindOrderByID returns the order with the given id.
func (s *StoreService) FindOrderByID(ctx context.Context, id int64) (*order.Order, error) {
	return s.repo.FindOrderByID(ctx, id)
}

// SaveOrder stores or replaces the given order after the repository's
// pet-existence check.
func (s *StoreService) SaveOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	stored, err := s.repo.SaveOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	s.logger.Info("order saved",
		zap.Int64("order_id", stored.ID),
		zap.Int64("pet_id", stored.PetID),
	)
	return stored, nil
}

// UpdateOrder overwrites the fields of an existing order after the
// repository's pet-existence check.
func (s *StoreService) UpdateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	updated, err := s.repo.UpdateOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	s.logger.Info("order updated", zap.Int64("order_id", updated.ID))
	return updated, nil
}

// DeleteOrderByID removes the order with the given id.
func (s *StoreService) DeleteOrderByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteOrderByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.Int64("order_id", id))
	return nil
}

// GetInventoryByStatus returns the pet-status census.
func (s *StoreService) GetInventoryByStatus(ctx context.Context) map[string]int {
	return s.repo.GetInventoryByStatus(ctx)
}

// DeleteAllOrders clears the order table.
func (s *StoreService) DeleteAllOrders(ctx context.Context) {
	s.repo.DeleteAllOrders(ctx)
	s.logger.Info("all orders deleted")
}
