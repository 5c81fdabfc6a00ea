package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under the
	// compare-and-set discipline: the write succeeds only if the stored
	// version still equals the version the aggregate was loaded with.
	// Returns errs.ErrConcurrentModification when another writer won.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order snapshot including stages and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status. Used by dashboards and the courier pickup job.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
