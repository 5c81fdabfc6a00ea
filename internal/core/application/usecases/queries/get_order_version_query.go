package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderVersionQueryIsNotConstructed = errors.New(
	"GetOrderVersionQuery must be created via NewGetOrderVersionQuery constructor",
)

// GetOrderVersionQuery is the cheap polling primitive: clients ask whether an
// order has moved past the version they last saw, and refetch the full order
// only when it has. SinceVersion zero means "just tell me the current version".
type GetOrderVersionQuery struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	sinceVersion int64

	guard guard.ConstructorGuard
}

// NewGetOrderVersionQuery creates a version poll for one order.
func NewGetOrderVersionQuery(orderID kernel.UUID, sinceVersion int64) (GetOrderVersionQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderVersionQuery{}, err
	}

	return GetOrderVersionQuery{
		orderID:      orderID,
		sinceVersion: sinceVersion,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderVersionQueryIsNotConstructed if validation fails.
func (q GetOrderVersionQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderVersionQueryIsNotConstructed)
}

// OrderID returns the identifier of the polled order.
func (q GetOrderVersionQuery) OrderID() kernel.UUID {
	return q.orderID
}

// SinceVersion returns the version the client last observed.
func (q GetOrderVersionQuery) SinceVersion() int64 {
	return q.sinceVersion
}

// GetOrderVersionQueryResponse reports the order's current version and
// whether it differs from the version the client supplied.
type GetOrderVersionQueryResponse struct {
	Version int64
	Changed bool
}
