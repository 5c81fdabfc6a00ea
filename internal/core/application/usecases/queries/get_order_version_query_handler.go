package queries

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderVersionQueryHandler reads an order's version counter.
// This is the hot path for change polling, so it touches a single column.
type GetOrderVersionQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderVersionQueryHandler creates a handler for version polls.
func NewGetOrderVersionQueryHandler(db *gorm.DB) GetOrderVersionQueryHandler {
	return GetOrderVersionQueryHandler{db: db}
}

// Handle executes the version poll. Returns errs.ErrObjectNotFound when no
// order exists under the requested identifier.
func (h GetOrderVersionQueryHandler) Handle(
	ctx context.Context,
	query GetOrderVersionQuery,
) (GetOrderVersionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderVersionQueryResponse{}, err
	}

	var version int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT version FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderVersionQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderVersionQueryResponse{}, err
	}

	return GetOrderVersionQueryResponse{
		Version: version,
		Changed: query.SinceVersion() != 0 && version != query.SinceVersion(),
	}, nil
}
