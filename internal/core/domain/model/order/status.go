package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order.
//
// The pipeline:
//
//	Submitted ──> Designing ──> DesignDone ──> InPrepress ──> ReadyForDelivery ──> Completed
//	     │            │              │              │  ▲             │
//	     └────────────┴──────────────┴──────────────┴──┼─────────────┴──> Cancelled / OnHold
//	                                         (InPrepress may re-enter itself)
//
// Completed and Cancelled are terminal: no transition leaves them. OnHold parks
// an order and can resume to any non-terminal status. The single canonical
// transition table lives here; no caller re-implements status comparisons.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Submitted is the initial status when a client places an order.
	Submitted

	// Designing indicates a designer is working on the order.
	Designing

	// DesignDone indicates the design is finished and attached.
	DesignDone

	// InPrepress indicates the plate-making sub-processes are underway.
	InPrepress

	// ReadyForDelivery indicates production is finished and the order awaits handoff.
	ReadyForDelivery

	// StatusCompleted indicates the order has been handed over. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was called off. Terminal.
	StatusCancelled

	// OnHold parks the order; production is paused until a manager resumes it.
	OnHold
)

// Wire vocabulary. These strings are the external contract and must not change.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		Submitted:        "Submitted",
		Designing:        "Designing",
		DesignDone:       "Design Done",
		InPrepress:       "In Prepress",
		ReadyForDelivery: "Ready for Delivery",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
		OnHold:           "On Hold",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:        "Submitted",
		Designing:        "Designing",
		DesignDone:       "Design Done",
		InPrepress:       "In Prepress",
		ReadyForDelivery: "Ready for Delivery",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
		OnHold:           "On Hold",
	}
}

// transitionTable is the one place that defines which target statuses are
// reachable from each status. Preconditions and authorization are layered on
// top by the Order aggregate; this table only answers reachability.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Submitted:        {Designing, StatusCancelled, OnHold},
		Designing:        {DesignDone, StatusCancelled, OnHold},
		DesignDone:       {InPrepress, StatusCancelled, OnHold},
		InPrepress:       {InPrepress, ReadyForDelivery, StatusCancelled, OnHold},
		ReadyForDelivery: {StatusCompleted, StatusCancelled, OnHold},
		OnHold:           {Submitted, Designing, DesignDone, InPrepress, ReadyForDelivery, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether target is reachable from s per the
// transition table. Reachability only: preconditions and authorization
// are checked separately by the aggregate.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
