package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for order fulfillment. It owns the status state
// machine, the per-stage sub-process checklists, the delivery routing, the
// single current assignee, and the append-only audit history.
//
// Invariants:
//   - status is always a member of the enumerated set; Completed and Cancelled
//     are terminal and no operation changes a terminal order
//   - a stage's status becomes Completed only when every sub-process the
//     registry requires is Completed (the Design stage additionally completes
//     implicitly when the order status advances past it)
//   - the history is append-only; prior entries are never edited or removed
//   - the cached progress figure is advisory and never feeds back into
//     transition decisions
//
// All mutation goes through the aggregate's methods; the repository serializes
// concurrent writers per order via compare-and-set on the version field.
type Order struct {
	id            kernel.UUID
	orderNumber   string
	status        Status
	specification Specification
	assignedTo    *kernel.UUID
	stages        map[Stage]*StageState
	delivery      *DeliveryInfo
	designLinks   []string
	history       []AuditEntry
	progress      int
	version       int64

	isConstructed bool
}

// NewOrder creates a freshly submitted order. The Submission stage is stamped
// complete immediately; every other stage starts NotStarted with its checklist
// initialized. The submitting actor is recorded in the audit history.
func NewOrder(id kernel.UUID, orderNumber string, spec Specification, submittedBy actor.Actor) (*Order, error) {
	if err := errors.Join(id.Validate(), submittedBy.Validate()); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	now := time.Now().UTC()

	stages := make(map[Stage]*StageState, len(AllStages()))
	for _, stage := range AllStages() {
		stages[stage] = NewStageState(stage)
	}
	stages[StageSubmission].markCompleted(submittedBy.ID(), now)

	o := &Order{
		id:            id,
		orderNumber:   orderNumber,
		status:        Submitted,
		specification: spec,
		stages:        stages,
		designLinks:   make([]string, 0),
		history:       make([]AuditEntry, 0, 1),
		version:       1,
		isConstructed: true,
	}

	o.appendAudit(ActionOrderSubmitted, submittedBy, now, orderNumber)
	o.refreshProgress()

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Missing stage records
// are filled with NotStarted defaults so reads never hit absent keys.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	spec Specification,
	status Status,
	assignedTo *kernel.UUID,
	stages map[Stage]*StageState,
	delivery *DeliveryInfo,
	designLinks []string,
	history []AuditEntry,
	progress int,
	version int64,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is not a positive version", version))
	}
	if progress < 0 || progress > 100 {
		return nil, errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}

	restored := make(map[Stage]*StageState, len(AllStages()))
	for _, stage := range AllStages() {
		if state, ok := stages[stage]; ok && state != nil {
			restored[stage] = state.clone()
		} else {
			restored[stage] = NewStageState(stage)
		}
	}

	if designLinks == nil {
		designLinks = make([]string, 0)
	}
	if history == nil {
		history = make([]AuditEntry, 0)
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		status:        status,
		specification: spec,
		assignedTo:    assignedTo,
		stages:        restored,
		delivery:      delivery,
		designLinks:   designLinks,
		history:       history,
		progress:      progress,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Specification returns what the client ordered.
func (o *Order) Specification() Specification {
	return o.specification
}

// AssignedTo returns the current assignee, or nil when unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	if o.assignedTo == nil {
		return nil
	}
	id := *o.assignedTo
	return &id
}

// StageState returns a copy of the named stage's state, or nil for an
// invalid stage.
func (o *Order) StageState(stage Stage) *StageState {
	state, ok := o.stages[stage]
	if !ok {
		return nil
	}
	return state.clone()
}

// Stages returns a deep copy of all stage states.
func (o *Order) Stages() map[Stage]*StageState {
	out := make(map[Stage]*StageState, len(o.stages))
	for stage, state := range o.stages {
		out[stage] = state.clone()
	}
	return out
}

// Delivery returns a copy of the chosen delivery details, or nil when no mode
// has been chosen yet.
func (o *Order) Delivery() *DeliveryInfo {
	if o.delivery == nil {
		return nil
	}
	info := *o.delivery
	return &info
}

// DesignLinks returns a copy of the recorded design attachment references.
func (o *Order) DesignLinks() []string {
	out := make([]string, len(o.designLinks))
	copy(out, o.designLinks)
	return out
}

// History returns a copy of the append-only audit history, oldest first.
func (o *Order) History() []AuditEntry {
	out := make([]AuditEntry, len(o.history))
	copy(out, o.history)
	return out
}

// Progress returns the cached advisory completion percentage.
func (o *Order) Progress() int {
	return o.progress
}

// Version returns the optimistic-concurrency version of the loaded snapshot.
func (o *Order) Version() int64 {
	return o.version
}

// Transition validates and applies a status change requested by an actor.
//
// The checks, in order:
//  1. the current status is not terminal and the target is reachable per the
//     transition table (InvalidTransitionError otherwise)
//  2. the actor's role is authorized for this transition (UnauthorizedError)
//  3. the transition's gate holds (PreconditionNotMetError):
//     DesignDone needs a recorded design attachment, ReadyForDelivery needs the
//     Prepress stage completed, Completed needs a chosen delivery mode whose
//     completion predicate is satisfied
//
// On success the status changes, the stage being entered or vacated is marked,
// an audit entry is appended, and the cached progress is recomputed.
func (o *Order) Transition(target Status, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(by.Validate(), target.Validate()); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), target.String(),
			fmt.Errorf("%s is a terminal status", o.status),
		)
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	if err := o.authorizeTransition(target, by); err != nil {
		return err
	}
	if err := o.checkTransitionPreconditions(target); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.applyStageEffects(target, by, now)

	from := o.status
	o.status = target
	o.appendAudit(ActionStatusChanged, by, now, fmt.Sprintf("%s -> %s", from, target))
	o.refreshProgress()

	return nil
}

// CompleteSubProcess records completion of a single checklist item with the
// acting actor and a timestamp.
//
// Completing an already-completed sub-process is a no-op, not an error, so
// retried requests are safe. When the last required item of a stage completes,
// the stage is stamped Completed, but the order status never advances here;
// that takes a separate explicit Transition call, so sub-process completion
// and stage-level advancement stay independently auditable.
func (o *Order) CompleteSubProcess(stage Stage, name string, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(by.Validate(), stage.Validate()); err != nil {
		return err
	}
	if !IsRequiredSubProcess(stage, name) {
		return errs.NewObjectNotFoundError("subProcess", fmt.Sprintf("%s/%s", stage, name))
	}
	if o.status.IsTerminal() {
		return errs.NewPreconditionNotMetError(fmt.Sprintf("order is %s", o.status))
	}
	if err := o.authorizeSubProcess(stage, name, by); err != nil {
		return err
	}

	state := o.stages[stage]
	if state.SubProcess(name).IsCompleted() {
		return nil
	}
	if state.Status == StageCompleted {
		return errs.NewPreconditionNotMetError(fmt.Sprintf("%s stage is already completed", stage))
	}

	now := time.Now().UTC()
	byID := by.ID()
	state.SubProcesses[name] = SubProcessState{
		Status:      SubProcessCompleted,
		CompletedAt: &now,
		CompletedBy: &byID,
	}
	state.markInProgress()
	if state.AllRequiredCompleted(stage) {
		state.markCompleted(by.ID(), now)
	}

	o.appendAudit(ActionSubProcessCompleted, by, now, fmt.Sprintf("%s/%s", stage, name))
	o.refreshProgress()

	return nil
}

// ChooseDeliveryMode records the handoff method for a finished order. Allowed
// only once the Prepress stage is completed and before the order reaches
// ReadyForDelivery. The order status is left unchanged; moving to
// ReadyForDelivery takes a separate Transition call. Choosing again before
// ReadyForDelivery overwrites the earlier choice.
func (o *Order) ChooseDeliveryMode(mode DeliveryMode, destination, shipmentCompany string, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() || o.status == ReadyForDelivery {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("delivery mode cannot be chosen while order is %s", o.status),
		)
	}
	if !roleIn(by.Role(), actor.RoleClient, actor.RoleManager) {
		return errs.NewUnauthorizedError(by.Role().String(), "choose delivery mode")
	}
	if o.stages[StagePrepress].Status != StageCompleted {
		return errs.NewPreconditionNotMetError("prepress stage is not completed")
	}

	now := time.Now().UTC()
	info, err := NewDeliveryInfo(mode, destination, shipmentCompany, now)
	if err != nil {
		return err
	}

	o.delivery = &info
	o.appendAudit(ActionDeliveryModeChosen, by, now, mode.String())
	o.refreshProgress()

	return nil
}

// AssignCourier records that a courier has picked up the shipment. This is the
// external event that unlocks completion for shipping-company orders.
// Idempotent: re-recording the same courier is a no-op.
func (o *Order) AssignCourier(courierID kernel.UUID, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(courierID.Validate(), by.Validate()); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewPreconditionNotMetError(fmt.Sprintf("order is %s", o.status))
	}
	if o.delivery == nil || o.delivery.Mode() != DeliveryModeShippingCompany {
		return errs.NewPreconditionNotMetError("delivery mode is not shipping-company")
	}
	if !roleIn(by.Role(), actor.RoleCourier, actor.RoleManager) {
		return errs.NewUnauthorizedError(by.Role().String(), "record courier pickup")
	}

	if assigned := o.delivery.AssignedCourier(); assigned != nil && assigned.IsEqual(courierID) {
		return nil
	}

	now := time.Now().UTC()
	o.delivery.assignCourier(courierID)
	o.appendAudit(ActionCourierAssigned, by, now, courierID.String())

	return nil
}

// Assign sets the single current assignee for the order, citing the assigner
// in the audit history. Reassignment overwrites without conflict detection;
// lost-update protection comes from the per-order version CAS, not from here.
func (o *Order) Assign(assigneeID kernel.UUID, assigner actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(assigneeID.Validate(), assigner.Validate()); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewPreconditionNotMetError(fmt.Sprintf("order is %s", o.status))
	}
	if assigner.Role() != actor.RoleManager {
		return errs.NewUnauthorizedError(assigner.Role().String(), "assign order")
	}

	now := time.Now().UTC()
	o.assignedTo = &assigneeID
	o.appendAudit(ActionAssigneeChanged, assigner, now, assigneeID.String())

	return nil
}

// AttachDesignLink records a design attachment reference. This is the first
// phase of the two-phase upload-then-transition flow: the upload itself lives
// outside the core, and a later failed transition never discards the link.
// Attaching the same link twice is a no-op, so retried requests are safe.
func (o *Order) AttachDesignLink(link string, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if link == "" {
		return errs.NewValueIsRequiredError("designLink")
	}
	if err := by.Validate(); err != nil {
		return err
	}

	if o.status != Submitted && o.status != Designing {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("design links cannot be attached while order is %s", o.status),
		)
	}
	if !roleIn(by.Role(), actor.RoleDesigner, actor.RoleManager) {
		return errs.NewUnauthorizedError(by.Role().String(), "attach design link")
	}

	for _, existing := range o.designLinks {
		if existing == link {
			return nil
		}
	}

	now := time.Now().UTC()
	o.designLinks = append(o.designLinks, link)
	o.appendAudit(ActionDesignLinkAttached, by, now, link)

	return nil
}

func (o *Order) authorizeTransition(target Status, by actor.Actor) error {
	var allowed []actor.Role

	switch target {
	case Designing, DesignDone:
		allowed = []actor.Role{actor.RoleDesigner, actor.RoleManager}
	case InPrepress, ReadyForDelivery:
		allowed = []actor.Role{actor.RolePrepress, actor.RoleManager}
	case StatusCancelled:
		allowed = []actor.Role{actor.RoleClient, actor.RoleManager}
	case OnHold, Submitted:
		allowed = []actor.Role{actor.RoleManager}
	case StatusCompleted:
		allowed = o.rolesAllowedToComplete()
	default:
		allowed = []actor.Role{actor.RoleManager}
	}

	if !roleIn(by.Role(), allowed...) {
		return errs.NewUnauthorizedError(by.Role().String(), fmt.Sprintf("transition to %s", target))
	}
	return nil
}

// rolesAllowedToComplete depends on the chosen delivery mode: a courier
// completes shipping-company handoffs, staff confirm direct and
// client-collection handoffs. With no mode chosen the precondition check will
// reject the transition anyway, so the broad staff set is returned.
func (o *Order) rolesAllowedToComplete() []actor.Role {
	if o.delivery != nil && o.delivery.Mode() == DeliveryModeShippingCompany {
		return []actor.Role{actor.RoleCourier, actor.RoleManager}
	}
	return []actor.Role{actor.RoleDesigner, actor.RolePrepress, actor.RoleManager, actor.RoleCourier}
}

func (o *Order) authorizeSubProcess(stage Stage, name string, by actor.Actor) error {
	var allowed []actor.Role

	switch stage {
	case StageDesign:
		allowed = []actor.Role{actor.RoleDesigner, actor.RoleManager}
	case StagePrepress:
		allowed = []actor.Role{actor.RolePrepress, actor.RoleManager}
	default:
		allowed = []actor.Role{actor.RoleManager}
	}

	if !roleIn(by.Role(), allowed...) {
		return errs.NewUnauthorizedError(by.Role().String(), fmt.Sprintf("complete %s/%s", stage, name))
	}
	return nil
}

func (o *Order) checkTransitionPreconditions(target Status) error {
	switch target {
	case DesignDone:
		if len(o.designLinks) == 0 {
			return errs.NewPreconditionNotMetError("no design attachment has been recorded")
		}
	case ReadyForDelivery:
		if o.stages[StagePrepress].Status != StageCompleted {
			return errs.NewPreconditionNotMetError("prepress sub-processes incomplete")
		}
	case StatusCompleted:
		if o.delivery == nil {
			return errs.NewPreconditionNotMetError("delivery mode has not been chosen")
		}
		return o.delivery.CanComplete()
	}
	return nil
}

// applyStageEffects marks the stage being entered as in progress and stamps
// the stage being vacated when the transition satisfies it. The Design stage
// completes implicitly on DesignDone, independent of its ripping sub-process.
func (o *Order) applyStageEffects(target Status, by actor.Actor, now time.Time) {
	switch target {
	case Designing:
		o.stages[StageDesign].markInProgress()
	case DesignDone:
		o.stages[StageDesign].markCompleted(by.ID(), now)
	case InPrepress:
		o.stages[StagePrepress].markInProgress()
	case ReadyForDelivery:
		o.stages[StageDelivery].markInProgress()
	case StatusCompleted:
		o.stages[StageDelivery].markCompleted(by.ID(), now)
	}
}

func (o *Order) appendAudit(action string, by actor.Actor, at time.Time, details string) {
	o.history = append(o.history, newAuditEntry(action, by, at, details))
}

func (o *Order) refreshProgress() {
	o.progress = CalculateProgress(o.status, o.stages, o.progress)
}

func roleIn(role actor.Role, allowed ...actor.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
