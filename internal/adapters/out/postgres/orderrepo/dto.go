// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Scalar attributes live in plain columns for cheap filtering; the stage
// checklists, delivery routing, design links, and audit history are stored as
// jsonb documents since they are only ever read and written whole. Version
// backs the compare-and-set discipline in Update.
type OrderDTO struct {
	ID            uuid.UUID                `gorm:"type:uuid;primaryKey"`
	OrderNumber   string                   `gorm:"uniqueIndex"`
	Status        int                      `gorm:"index"`
	AssignedTo    *uuid.UUID               `gorm:"type:uuid;index"`
	Specification SpecificationDTO         `gorm:"embedded;embeddedPrefix:spec_"`
	Stages        map[string]StageStateDTO `gorm:"type:jsonb;serializer:json"`
	Delivery      *DeliveryDTO             `gorm:"type:jsonb;serializer:json"`
	DesignLinks   []string                 `gorm:"type:jsonb;serializer:json"`
	History       []AuditEntryDTO          `gorm:"type:jsonb;serializer:json"`
	Progress      int
	Version       int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SpecificationDTO holds the print specification as embedded columns.
type SpecificationDTO struct {
	Material   string
	Dimensions string
	Colors     string
}

// StageStateDTO is the jsonb shape of one stage's tracking record.
type StageStateDTO struct {
	Status         int                      `json:"status"`
	CompletionDate *time.Time               `json:"completionDate,omitempty"`
	CompletedBy    *uuid.UUID               `json:"completedBy,omitempty"`
	SubProcesses   map[string]SubProcessDTO `json:"subProcesses"`
}

// SubProcessDTO is the jsonb shape of one checklist item.
type SubProcessDTO struct {
	Status      int        `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *uuid.UUID `json:"completedBy,omitempty"`
}

// DeliveryDTO is the jsonb shape of the chosen delivery routing.
type DeliveryDTO struct {
	Mode            int        `json:"mode"`
	Destination     string     `json:"destination,omitempty"`
	ShipmentCompany string     `json:"shipmentCompany,omitempty"`
	AssignedCourier *uuid.UUID `json:"assignedCourier,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// AuditEntryDTO is the jsonb shape of one history record.
type AuditEntryDTO struct {
	Action    string    `json:"action"`
	ActorID   uuid.UUID `json:"actorId"`
	ActorRole int       `json:"actorRole"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	stages := make(map[string]StageStateDTO, len(aggregate.Stages()))
	for stage, state := range aggregate.Stages() {
		subs := make(map[string]SubProcessDTO, len(state.SubProcesses))
		for name, sub := range state.SubProcesses {
			subs[name] = SubProcessDTO{
				Status:      int(sub.Status),
				CompletedAt: sub.CompletedAt,
				CompletedBy: optionalRawUUID(sub.CompletedBy),
			}
		}
		stages[stage.String()] = StageStateDTO{
			Status:         int(state.Status),
			CompletionDate: state.CompletionDate,
			CompletedBy:    optionalRawUUID(state.CompletedBy),
			SubProcesses:   subs,
		}
	}

	var delivery *DeliveryDTO
	if d := aggregate.Delivery(); d != nil {
		delivery = &DeliveryDTO{
			Mode:            int(d.Mode()),
			Destination:     d.Destination(),
			ShipmentCompany: d.ShipmentCompany(),
			AssignedCourier: optionalRawUUID(d.AssignedCourier()),
			CreatedAt:       d.CreatedAt(),
		}
	}

	history := make([]AuditEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, AuditEntryDTO{
			Action:    entry.Action,
			ActorID:   entry.ActorID.Bytes(),
			ActorRole: int(entry.ActorRole),
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		})
	}

	spec := aggregate.Specification()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Status:      int(aggregate.Status()),
		AssignedTo:  optionalRawUUID(aggregate.AssignedTo()),
		Specification: SpecificationDTO{
			Material:   spec.Material(),
			Dimensions: spec.Dimensions(),
			Colors:     spec.Colors(),
		},
		Stages:      stages,
		Delivery:    delivery,
		DesignLinks: aggregate.DesignLinks(),
		History:     history,
		Progress:    aggregate.Progress(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedTo, err := optionalDomainUUID(dto.AssignedTo)
	if err != nil {
		return nil, err
	}

	stages := make(map[order.Stage]*order.StageState, len(dto.Stages))
	for name, stateDTO := range dto.Stages {
		stage, stageErr := order.StageFromString(name)
		if stageErr != nil {
			return nil, stageErr
		}

		completedBy, byErr := optionalDomainUUID(stateDTO.CompletedBy)
		if byErr != nil {
			return nil, byErr
		}

		subs := make(map[string]order.SubProcessState, len(stateDTO.SubProcesses))
		for subName, subDTO := range stateDTO.SubProcesses {
			subCompletedBy, subErr := optionalDomainUUID(subDTO.CompletedBy)
			if subErr != nil {
				return nil, subErr
			}
			subs[subName] = order.SubProcessState{
				Status:      order.SubProcessStatus(subDTO.Status),
				CompletedAt: subDTO.CompletedAt,
				CompletedBy: subCompletedBy,
			}
		}

		stages[stage] = &order.StageState{
			Status:         order.StageStatus(stateDTO.Status),
			CompletionDate: stateDTO.CompletionDate,
			CompletedBy:    completedBy,
			SubProcesses:   subs,
		}
	}

	var delivery *order.DeliveryInfo
	if dto.Delivery != nil {
		courier, courierErr := optionalDomainUUID(dto.Delivery.AssignedCourier)
		if courierErr != nil {
			return nil, courierErr
		}

		info, deliveryErr := order.RestoreDeliveryInfo(
			order.DeliveryMode(dto.Delivery.Mode),
			dto.Delivery.Destination,
			dto.Delivery.ShipmentCompany,
			courier,
			dto.Delivery.CreatedAt,
		)
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		delivery = &info
	}

	history := make([]order.AuditEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		actorID, entryErr := kernel.UUIDFromBytes(entryDTO.ActorID[:])
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.AuditEntry{
			Action:    entryDTO.Action,
			ActorID:   actorID,
			ActorRole: actor.Role(entryDTO.ActorRole),
			Timestamp: entryDTO.Timestamp,
			Details:   entryDTO.Details,
		})
	}

	spec, err := order.NewSpecification(
		dto.Specification.Material,
		dto.Specification.Dimensions,
		dto.Specification.Colors,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		spec,
		order.Status(dto.Status),
		assignedTo,
		stages,
		delivery,
		dto.DesignLinks,
		history,
		dto.Progress,
		dto.Version,
	)
}

func optionalRawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
