// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures; they never load or mutate domain aggregates.
package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full state of a single order: status, stages
// with their sub-process checklists, delivery routing, design links, audit
// history, and the advisory progress value.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order. Enumerated
// values are rendered as their wire strings.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        string
	AssignedTo    *kernel.UUID
	Specification SpecificationResponse
	Stages        map[string]StageResponse
	Delivery      *DeliveryResponse
	DesignLinks   []string
	History       []AuditEntryResponse
	Progress      int
	Version       int64
}

// SpecificationResponse describes what the client ordered.
type SpecificationResponse struct {
	Material   string
	Dimensions string
	Colors     string
}

// StageResponse is the read model of one production stage.
type StageResponse struct {
	Status         string
	CompletionDate *time.Time
	CompletedBy    *kernel.UUID
	SubProcesses   map[string]SubProcessResponse
}

// SubProcessResponse is the read model of one checklist item.
type SubProcessResponse struct {
	Status      string
	CompletedAt *time.Time
	CompletedBy *kernel.UUID
}

// DeliveryResponse is the read model of the chosen delivery routing.
type DeliveryResponse struct {
	Mode            string
	Destination     string
	ShipmentCompany string
	AssignedCourier *kernel.UUID
}

// AuditEntryResponse is the read model of one history record.
type AuditEntryResponse struct {
	Action    string
	ActorID   kernel.UUID
	ActorRole string
	Timestamp time.Time
	Details   string
}
