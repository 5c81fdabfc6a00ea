package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Completed and cancelled orders are filtered out at the SQL level.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Results are sorted by order number for stable dashboard output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			assigned_to,
			progress,
			version
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY order_number
	`, int(order.StatusCompleted), int(order.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderNumber string
			status      int
			assignedTo  *uuid.UUID
			progress    int
			version     int64
		)

		if err = rows.Scan(&id, &orderNumber, &status, &assignedTo, &progress, &version); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		assignee, assigneeErr := optionalUUID(assignedTo)
		if assigneeErr != nil {
			return nil, assigneeErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:          orderID,
			OrderNumber: orderNumber,
			Status:      order.Status(status).String(),
			AssignedTo:  assignee,
			Progress:    progress,
			Version:     version,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
