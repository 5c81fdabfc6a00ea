package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row shapes for the jsonb columns. These mirror the serializer:json layout
// written by the orderrepo adapter; enum values travel as ints.
type stageRow struct {
	Status         int                      `json:"status"`
	CompletionDate *time.Time               `json:"completionDate,omitempty"`
	CompletedBy    *uuid.UUID               `json:"completedBy,omitempty"`
	SubProcesses   map[string]subProcessRow `json:"subProcesses"`
}

type subProcessRow struct {
	Status      int        `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *uuid.UUID `json:"completedBy,omitempty"`
}

type deliveryRow struct {
	Mode            int        `json:"mode"`
	Destination     string     `json:"destination,omitempty"`
	ShipmentCompany string     `json:"shipmentCompany,omitempty"`
	AssignedCourier *uuid.UUID `json:"assignedCourier,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type auditRow struct {
	Action    string    `json:"action"`
	ActorID   uuid.UUID `json:"actorId"`
	ActorRole int       `json:"actorRole"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// GetOrderQueryHandler reads a single order's full state from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists under the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			assigned_to,
			spec_material,
			spec_dimensions,
			spec_colors,
			stages,
			delivery,
			design_links,
			history,
			progress,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id          uuid.UUID
		orderNumber string
		status      int
		assignedTo  *uuid.UUID
		material    string
		dimensions  string
		colors      string
		stagesJSON  []byte
		delivJSON   []byte
		linksJSON   []byte
		histJSON    []byte
		progress    int
		version     int64
	)

	err := row.Scan(
		&id, &orderNumber, &status, &assignedTo,
		&material, &dimensions, &colors,
		&stagesJSON, &delivJSON, &linksJSON, &histJSON,
		&progress, &version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:          orderID,
		OrderNumber: orderNumber,
		Status:      order.Status(status).String(),
		Specification: SpecificationResponse{
			Material:   material,
			Dimensions: dimensions,
			Colors:     colors,
		},
		Progress: progress,
		Version:  version,
	}

	if resp.AssignedTo, err = optionalUUID(assignedTo); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Stages, err = decodeStages(stagesJSON); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Delivery, err = decodeDelivery(delivJSON); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if len(linksJSON) > 0 {
		if err = json.Unmarshal(linksJSON, &resp.DesignLinks); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	if resp.History, err = decodeHistory(histJSON); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func decodeStages(raw []byte) (map[string]StageResponse, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows map[string]stageRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	stages := make(map[string]StageResponse, len(rows))
	for name, sr := range rows {
		completedBy, err := optionalUUID(sr.CompletedBy)
		if err != nil {
			return nil, err
		}

		subs := make(map[string]SubProcessResponse, len(sr.SubProcesses))
		for subName, sub := range sr.SubProcesses {
			subCompletedBy, subErr := optionalUUID(sub.CompletedBy)
			if subErr != nil {
				return nil, subErr
			}
			subs[subName] = SubProcessResponse{
				Status:      order.SubProcessStatus(sub.Status).String(),
				CompletedAt: sub.CompletedAt,
				CompletedBy: subCompletedBy,
			}
		}

		stages[name] = StageResponse{
			Status:         order.StageStatus(sr.Status).String(),
			CompletionDate: sr.CompletionDate,
			CompletedBy:    completedBy,
			SubProcesses:   subs,
		}
	}

	return stages, nil
}

func decodeDelivery(raw []byte) (*DeliveryResponse, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var dr deliveryRow
	if err := json.Unmarshal(raw, &dr); err != nil {
		return nil, err
	}

	courier, err := optionalUUID(dr.AssignedCourier)
	if err != nil {
		return nil, err
	}

	return &DeliveryResponse{
		Mode:            order.DeliveryMode(dr.Mode).String(),
		Destination:     dr.Destination,
		ShipmentCompany: dr.ShipmentCompany,
		AssignedCourier: courier,
	}, nil
}

func decodeHistory(raw []byte) ([]AuditEntryResponse, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []auditRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	history := make([]AuditEntryResponse, 0, len(rows))
	for _, ar := range rows {
		actorID, err := kernel.UUIDFromBytes(ar.ActorID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, AuditEntryResponse{
			Action:    ar.Action,
			ActorID:   actorID,
			ActorRole: actor.Role(ar.ActorRole).String(),
			Timestamp: ar.Timestamp,
			Details:   ar.Details,
		})
	}

	return history, nil
}
