package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves summaries of every order that has not
// reached a terminal status. Backs the shop floor dashboard.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s  %-20s %3d%%\n", o.OrderNumber, o.Status, o.Progress)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve all non-terminal orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is a dashboard summary of one active order.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      string
	AssignedTo  *kernel.UUID
	Progress    int
	Version     int64
}
