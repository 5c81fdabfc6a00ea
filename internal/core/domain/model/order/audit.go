package order

import (
	"time"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
)

// Audit action vocabulary. One constant per state-changing operation.
const (
	ActionOrderSubmitted      = "order_submitted"
	ActionStatusChanged       = "status_changed"
	ActionSubProcessCompleted = "sub_process_completed"
	ActionDeliveryModeChosen  = "delivery_mode_chosen"
	ActionCourierAssigned     = "courier_assigned"
	ActionAssigneeChanged     = "assignee_changed"
	ActionDesignLinkAttached  = "design_link_attached"
)

// AuditEntry is one immutable record in an order's history: what happened, who
// did it, and when. Entries are only ever appended, never edited or removed;
// the history is the system of record for "who completed X and when".
type AuditEntry struct {
	Action    string
	ActorID   kernel.UUID
	ActorRole actor.Role
	Timestamp time.Time
	Details   string
}

// newAuditEntry stamps an entry for the given action and actor.
func newAuditEntry(action string, by actor.Actor, at time.Time, details string) AuditEntry {
	return AuditEntry{
		Action:    action,
		ActorID:   by.ID(),
		ActorRole: by.Role(),
		Timestamp: at,
		Details:   details,
	}
}
