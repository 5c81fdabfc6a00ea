package http

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderRequest registers a new print order.
type SubmitOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
	Material    string `json:"material"`
	Dimensions  string `json:"dimensions,omitempty"`
	Colors      string `json:"colors,omitempty"`
	ActorID     string `json:"actorId"`
	ActorRole   string `json:"actorRole"`
}

// SubmitOrderResponse carries the identifier assigned to a new order.
type SubmitOrderResponse struct {
	ID string `json:"id"`
}

// ActorRequest is the body of endpoints that only need to know who acts.
type ActorRequest struct {
	ActorID   string `json:"actorId"`
	ActorRole string `json:"actorRole"`
}

// ChangeStatusRequest moves an order to a new workflow status.
type ChangeStatusRequest struct {
	Status    string `json:"status"`
	ActorID   string `json:"actorId"`
	ActorRole string `json:"actorRole"`
}

// ChooseDeliveryRequest selects how a finished order reaches the client.
type ChooseDeliveryRequest struct {
	Mode            string `json:"mode"`
	Destination     string `json:"destination,omitempty"`
	ShipmentCompany string `json:"shipmentCompany,omitempty"`
	ActorID         string `json:"actorId"`
	ActorRole       string `json:"actorRole"`
}

// AssignOrderRequest puts an order under a staff member's responsibility.
type AssignOrderRequest struct {
	AssigneeID string `json:"assigneeId"`
	ActorID    string `json:"actorId"`
	ActorRole  string `json:"actorRole"`
}

// AssignCourierRequest designates the courier for a shipping-company order.
type AssignCourierRequest struct {
	CourierID string `json:"courierId"`
	ActorID   string `json:"actorId"`
	ActorRole string `json:"actorRole"`
}

// AttachDesignLinkRequest adds a design file link to an order.
type AttachDesignLinkRequest struct {
	Link      string `json:"link"`
	ActorID   string `json:"actorId"`
	ActorRole string `json:"actorRole"`
}

// OrderResponse is the full representation of one order.
type OrderResponse struct {
	ID            string                   `json:"id"`
	OrderNumber   string                   `json:"orderNumber"`
	Status        string                   `json:"status"`
	AssignedTo    *string                  `json:"assignedTo,omitempty"`
	Specification SpecificationResponse    `json:"specification"`
	Stages        map[string]StageResponse `json:"stages"`
	Delivery      *DeliveryResponse        `json:"delivery,omitempty"`
	DesignLinks   []string                 `json:"designLinks"`
	History       []AuditEntryResponse     `json:"history"`
	Progress      int                      `json:"progress"`
	Version       int64                    `json:"version"`
}

// SpecificationResponse describes what the client ordered.
type SpecificationResponse struct {
	Material   string `json:"material"`
	Dimensions string `json:"dimensions,omitempty"`
	Colors     string `json:"colors,omitempty"`
}

// StageResponse is one production stage with its sub-process checklist.
type StageResponse struct {
	Status         string                        `json:"status"`
	CompletionDate *time.Time                    `json:"completionDate,omitempty"`
	CompletedBy    *string                       `json:"completedBy,omitempty"`
	SubProcesses   map[string]SubProcessResponse `json:"subProcesses"`
}

// SubProcessResponse is one checklist item of a stage.
type SubProcessResponse struct {
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *string    `json:"completedBy,omitempty"`
}

// DeliveryResponse describes the chosen delivery routing.
type DeliveryResponse struct {
	Mode            string  `json:"mode"`
	Destination     string  `json:"destination,omitempty"`
	ShipmentCompany string  `json:"shipmentCompany,omitempty"`
	AssignedCourier *string `json:"assignedCourier,omitempty"`
}

// AuditEntryResponse is one record of the order's history.
type AuditEntryResponse struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// OrderSummaryResponse is the compact row of the active orders board.
type OrderSummaryResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Progress    int     `json:"progress"`
	Version     int64   `json:"version"`
}

// OrderVersionResponse answers the change poll.
type OrderVersionResponse struct {
	Version int64 `json:"version"`
	Changed bool  `json:"changed"`
}
