package order_test

import (
	"testing"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func testSpec(t *testing.T) order.Specification {
	t.Helper()
	spec, err := order.NewSpecification("vinyl banner", "200x80cm", "4/0 CMYK")
	require.NoError(t, err)
	return spec
}

func newSubmittedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1042", testSpec(t), testActor(t, actor.RoleClient))
	require.NoError(t, err)
	return o
}

// driveTo walks an order along the happy path up to (and including) the target
// status, completing whatever each gate requires along the way.
func driveTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	designer := testActor(t, actor.RoleDesigner)
	prepress := testActor(t, actor.RolePrepress)

	steps := []func(){
		func() { require.NoError(t, o.Transition(order.Designing, designer)) },
		func() {
			require.NoError(t, o.AttachDesignLink("https://files.example/designs/1042.pdf", designer))
			require.NoError(t, o.Transition(order.DesignDone, designer))
		},
		func() { require.NoError(t, o.Transition(order.InPrepress, prepress)) },
		func() {
			for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
				require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
			}
			require.NoError(t, o.Transition(order.ReadyForDelivery, prepress))
		},
	}
	targets := []order.Status{order.Designing, order.DesignDone, order.InPrepress, order.ReadyForDelivery}

	for i, step := range steps {
		if o.Status() == target {
			return
		}
		step()
		if targets[i] == target {
			return
		}
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("scenario_a_new_order_state", func(t *testing.T) {
		o := newSubmittedOrder(t)

		assert.Equal(t, order.Submitted, o.Status())
		assert.Equal(t, "ORD-1042", o.OrderNumber())
		assert.Equal(t, 25, o.Progress(), "submission is always counted complete")
		assert.Nil(t, o.AssignedTo())
		assert.Equal(t, int64(1), o.Version())

		assert.Equal(t, order.StageCompleted, o.StageState(order.StageSubmission).Status)
		assert.Equal(t, order.StageNotStarted, o.StageState(order.StageDesign).Status)
		assert.Equal(t, order.StageNotStarted, o.StageState(order.StagePrepress).Status)
		assert.Equal(t, order.StageNotStarted, o.StageState(order.StageDelivery).Status)

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.ActionOrderSubmitted, history[0].Action)
	})

	t.Run("requires_order_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", testSpec(t), testActor(t, actor.RoleClient))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("scenario_a_employee_starts_design", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.Transition(order.Designing, testActor(t, actor.RoleDesigner)))

		assert.Equal(t, order.Designing, o.Status())
		assert.Equal(t, order.StageInProgress, o.StageState(order.StageDesign).Status)
	})

	t.Run("scenario_a_submitted_to_completed_is_invalid", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.Transition(order.StatusCompleted, testActor(t, actor.RoleManager))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Submitted, o.Status())
	})

	t.Run("design_done_requires_attachment", func(t *testing.T) {
		o := newSubmittedOrder(t)
		designer := testActor(t, actor.RoleDesigner)
		require.NoError(t, o.Transition(order.Designing, designer))

		err := o.Transition(order.DesignDone, designer)
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)

		// Second phase is retryable after the upload succeeds; the earlier
		// failure never discarded anything.
		require.NoError(t, o.AttachDesignLink("https://files.example/designs/1042.pdf", designer))
		require.NoError(t, o.Transition(order.DesignDone, designer))
		assert.Equal(t, order.StageCompleted, o.StageState(order.StageDesign).Status)
	})

	t.Run("design_stage_completes_implicitly_without_ripping", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.DesignDone)

		design := o.StageState(order.StageDesign)
		assert.Equal(t, order.StageCompleted, design.Status)
		assert.False(t, design.SubProcess(order.SubProcessRipping).IsCompleted(),
			"ripping stays tracked separately")
	})

	t.Run("ready_for_delivery_fails_until_prepress_complete", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)

		err := o.Transition(order.ReadyForDelivery, prepress)
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)

		for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		}
		require.NoError(t, o.Transition(order.ReadyForDelivery, prepress))
	})

	t.Run("unauthorized_role_is_rejected", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.Transition(order.Designing, testActor(t, actor.RoleCourier))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.Submitted, o.Status())
	})

	t.Run("manager_can_hold_and_resume", func(t *testing.T) {
		o := newSubmittedOrder(t)
		manager := testActor(t, actor.RoleManager)
		driveTo(t, o, order.InPrepress)

		require.NoError(t, o.Transition(order.OnHold, manager))
		assert.Equal(t, order.OnHold, o.Status())

		require.NoError(t, o.Transition(order.InPrepress, manager))
		assert.Equal(t, order.InPrepress, o.Status())
	})

	t.Run("only_manager_may_hold", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.Transition(order.OnHold, testActor(t, actor.RoleDesigner))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("client_may_cancel", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.Transition(order.StatusCancelled, testActor(t, actor.RoleClient)))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("terminal_orders_accept_no_transition", func(t *testing.T) {
		o := newSubmittedOrder(t)
		manager := testActor(t, actor.RoleManager)
		require.NoError(t, o.Transition(order.StatusCancelled, manager))

		for _, target := range []order.Status{
			order.Designing, order.OnHold, order.StatusCompleted, order.Submitted,
		} {
			require.ErrorIs(t, o.Transition(target, manager), errs.ErrInvalidTransition)
		}
	})

	t.Run("appends_audit_entry", func(t *testing.T) {
		o := newSubmittedOrder(t)
		designer := testActor(t, actor.RoleDesigner)

		require.NoError(t, o.Transition(order.Designing, designer))

		history := o.History()
		last := history[len(history)-1]
		assert.Equal(t, order.ActionStatusChanged, last.Action)
		assert.True(t, last.ActorID.IsEqual(designer.ID()))
		assert.Equal(t, "Submitted -> Designing", last.Details)
		assert.False(t, last.Timestamp.IsZero())
	})
}

func TestOrder_CompleteSubProcess(t *testing.T) {
	t.Run("scenario_b_finishing_flips_prepress_stage", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)

		for _, name := range []string{"positioning", "laserImaging", "exposure", "washout", "drying"} {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
			assert.Equal(t, order.StageInProgress, o.StageState(order.StagePrepress).Status,
				"stage must remain InProgress after %s", name)
		}

		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "finishing", prepress))

		state := o.StageState(order.StagePrepress)
		assert.Equal(t, order.StageCompleted, state.Status)
		require.NotNil(t, state.CompletedBy)
		assert.True(t, state.CompletedBy.IsEqual(prepress.ID()))
		assert.NotNil(t, state.CompletionDate)

		// Stage completion never advances the order status by itself.
		assert.Equal(t, order.InPrepress, o.Status())
	})

	t.Run("records_actor_and_timestamp", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)

		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "exposure", prepress))

		sub := o.StageState(order.StagePrepress).SubProcess("exposure")
		assert.True(t, sub.IsCompleted())
		require.NotNil(t, sub.CompletedBy)
		assert.True(t, sub.CompletedBy.IsEqual(prepress.ID()))
		assert.NotNil(t, sub.CompletedAt)
	})

	t.Run("is_idempotent", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)

		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "washout", prepress))
		historyLen := len(o.History())
		first := o.StageState(order.StagePrepress).SubProcess("washout")

		other := testActor(t, actor.RolePrepress)
		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "washout", other))

		assert.Len(t, o.History(), historyLen, "a retried completion must not append history")
		second := o.StageState(order.StagePrepress).SubProcess("washout")
		assert.True(t, second.CompletedBy.IsEqual(*first.CompletedBy),
			"original completed-by attribution must be preserved")
	})

	t.Run("unknown_sub_process_is_rejected", func(t *testing.T) {
		o := newSubmittedOrder(t)
		prepress := testActor(t, actor.RolePrepress)

		err := o.CompleteSubProcess(order.StagePrepress, "engraving", prepress)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = o.CompleteSubProcess(order.StageDesign, "exposure", prepress)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("prepress_role_cannot_complete_design_sub_process", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.Designing)

		err := o.CompleteSubProcess(order.StageDesign, "ripping", testActor(t, actor.RolePrepress))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("designer_completes_ripping", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.Designing)
		designer := testActor(t, actor.RoleDesigner)

		require.NoError(t, o.CompleteSubProcess(order.StageDesign, "ripping", designer))

		state := o.StageState(order.StageDesign)
		assert.Equal(t, order.StageCompleted, state.Status,
			"ripping is the design stage's only required sub-process")
	})

	t.Run("rejected_on_terminal_order", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.Transition(order.StatusCancelled, testActor(t, actor.RoleManager)))

		err := o.CompleteSubProcess(order.StagePrepress, "exposure", testActor(t, actor.RolePrepress))

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("sub_processes_are_unordered", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)

		// drying may complete before exposure; there is no sequential gate.
		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "drying", prepress))
		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "exposure", prepress))
	})
}

func TestOrder_ChooseDeliveryMode(t *testing.T) {
	t.Run("requires_prepress_completed", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)

		err := o.ChooseDeliveryMode(order.DeliveryModeDirect, "", "", testActor(t, actor.RoleClient))

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("allowed_after_prepress_before_ready_for_delivery", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)
		for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		}

		require.NoError(t, o.ChooseDeliveryMode(
			order.DeliveryModeShippingCompany, "", "Middle East", testActor(t, actor.RoleClient)))

		// Choosing a mode does not advance the status.
		assert.Equal(t, order.InPrepress, o.Status())
		require.NotNil(t, o.Delivery())
		assert.Equal(t, order.DeliveryModeShippingCompany, o.Delivery().Mode())
		assert.Equal(t, "Middle East", o.Delivery().ShipmentCompany())
	})

	t.Run("rejected_once_ready_for_delivery", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.ReadyForDelivery)

		err := o.ChooseDeliveryMode(order.DeliveryModeDirect, "", "", testActor(t, actor.RoleManager))

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("shipping_company_requires_company_name", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)
		for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		}

		err := o.ChooseDeliveryMode(
			order.DeliveryModeShippingCompany, "", "", testActor(t, actor.RoleClient))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o.Delivery())
	})

	t.Run("staff_outside_manager_cannot_choose", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)

		err := o.ChooseDeliveryMode(order.DeliveryModeDirect, "", "", testActor(t, actor.RolePrepress))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestOrder_Completion(t *testing.T) {
	readyWithMode := func(t *testing.T, mode order.DeliveryMode, company string) *order.Order {
		t.Helper()
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)
		for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		}
		require.NoError(t, o.ChooseDeliveryMode(mode, "", company, testActor(t, actor.RoleManager)))
		require.NoError(t, o.Transition(order.ReadyForDelivery, prepress))
		return o
	}

	t.Run("completion_requires_chosen_mode", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.ReadyForDelivery)

		err := o.Transition(order.StatusCompleted, testActor(t, actor.RoleManager))

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("direct_handover_completes_immediately", func(t *testing.T) {
		o := readyWithMode(t, order.DeliveryModeDirect, "")

		require.NoError(t, o.Transition(order.StatusCompleted, testActor(t, actor.RoleDesigner)))

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.StageCompleted, o.StageState(order.StageDelivery).Status)
		assert.Equal(t, 100, o.Progress())
	})

	t.Run("scenario_c_shipping_company_waits_for_courier", func(t *testing.T) {
		o := readyWithMode(t, order.DeliveryModeShippingCompany, "Middle East")
		courier := testActor(t, actor.RoleCourier)

		err := o.Transition(order.StatusCompleted, courier)
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)

		require.NoError(t, o.AssignCourier(courier.ID(), courier))

		require.NoError(t, o.Transition(order.StatusCompleted, courier))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("client_cannot_confirm_handover", func(t *testing.T) {
		o := readyWithMode(t, order.DeliveryModeClientCollection, "")

		err := o.Transition(order.StatusCompleted, testActor(t, actor.RoleClient))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("designer_cannot_complete_shipping_company_order", func(t *testing.T) {
		o := readyWithMode(t, order.DeliveryModeShippingCompany, "Middle East")
		courier := testActor(t, actor.RoleCourier)
		require.NoError(t, o.AssignCourier(courier.ID(), courier))

		err := o.Transition(order.StatusCompleted, testActor(t, actor.RoleDesigner))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("requires_shipping_company_mode", func(t *testing.T) {
		o := newSubmittedOrder(t)
		courier := testActor(t, actor.RoleCourier)

		err := o.AssignCourier(courier.ID(), courier)

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("is_idempotent_for_same_courier", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)
		for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
			require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		}
		require.NoError(t, o.ChooseDeliveryMode(
			order.DeliveryModeShippingCompany, "", "Middle East", testActor(t, actor.RoleManager)))
		courier := testActor(t, actor.RoleCourier)

		require.NoError(t, o.AssignCourier(courier.ID(), courier))
		historyLen := len(o.History())

		require.NoError(t, o.AssignCourier(courier.ID(), courier))
		assert.Len(t, o.History(), historyLen)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("manager_assigns_and_reassignment_overwrites", func(t *testing.T) {
		o := newSubmittedOrder(t)
		manager := testActor(t, actor.RoleManager)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Assign(first, manager))
		require.NotNil(t, o.AssignedTo())
		assert.True(t, o.AssignedTo().IsEqual(first))

		require.NoError(t, o.Assign(second, manager))
		assert.True(t, o.AssignedTo().IsEqual(second), "reassignment overwrites, it does not queue")

		history := o.History()
		last := history[len(history)-1]
		assert.Equal(t, order.ActionAssigneeChanged, last.Action)
		assert.True(t, last.ActorID.IsEqual(manager.ID()), "audit cites the assigner")
	})

	t.Run("non_manager_cannot_assign", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.Assign(kernel.NewUUID(), testActor(t, actor.RoleDesigner))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("rejected_on_terminal_order", func(t *testing.T) {
		o := newSubmittedOrder(t)
		manager := testActor(t, actor.RoleManager)
		require.NoError(t, o.Transition(order.StatusCancelled, manager))

		err := o.Assign(kernel.NewUUID(), manager)

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})
}

func TestOrder_AttachDesignLink(t *testing.T) {
	t.Run("attach_is_idempotent", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.Designing)
		designer := testActor(t, actor.RoleDesigner)

		require.NoError(t, o.AttachDesignLink("https://files.example/d/1.pdf", designer))
		require.NoError(t, o.AttachDesignLink("https://files.example/d/1.pdf", designer))

		assert.Equal(t, []string{"https://files.example/d/1.pdf"}, o.DesignLinks())
	})

	t.Run("rejected_after_design_done", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.DesignDone)

		err := o.AttachDesignLink("https://files.example/d/late.pdf", testActor(t, actor.RoleDesigner))

		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})

	t.Run("empty_link_is_rejected", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.AttachDesignLink("", testActor(t, actor.RoleDesigner))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ProgressIsMonotonicAlongHappyPath(t *testing.T) {
	o := newSubmittedOrder(t)
	designer := testActor(t, actor.RoleDesigner)
	prepress := testActor(t, actor.RolePrepress)
	manager := testActor(t, actor.RoleManager)

	progress := []int{o.Progress()}
	record := func() { progress = append(progress, o.Progress()) }

	require.NoError(t, o.Transition(order.Designing, designer))
	record()
	require.NoError(t, o.AttachDesignLink("https://files.example/d/1.pdf", designer))
	require.NoError(t, o.Transition(order.DesignDone, designer))
	record()
	require.NoError(t, o.Transition(order.InPrepress, prepress))
	record()
	for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, name, prepress))
		record()
	}
	require.NoError(t, o.ChooseDeliveryMode(order.DeliveryModeDirect, "", "", manager))
	require.NoError(t, o.Transition(order.ReadyForDelivery, prepress))
	record()
	require.NoError(t, o.Transition(order.StatusCompleted, manager))
	record()

	assert.Equal(t, 25, progress[0])
	assert.Equal(t, 100, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1],
			"progress must be monotonic non-decreasing, got %v", progress)
	}
}

func TestOrder_ProgressFrozenOnCancellation(t *testing.T) {
	o := newSubmittedOrder(t)
	driveTo(t, o, order.DesignDone)
	before := o.Progress()
	assert.Equal(t, 50, before)

	require.NoError(t, o.Transition(order.StatusCancelled, testActor(t, actor.RoleManager)))

	assert.Equal(t, before, o.Progress(), "cancelled orders keep the last known value")
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip_preserves_state", func(t *testing.T) {
		o := newSubmittedOrder(t)
		driveTo(t, o, order.InPrepress)
		prepress := testActor(t, actor.RolePrepress)
		require.NoError(t, o.CompleteSubProcess(order.StagePrepress, "exposure", prepress))

		restored, err := order.RestoreOrder(
			o.ID(), o.OrderNumber(), o.Specification(), o.Status(), o.AssignedTo(),
			o.Stages(), o.Delivery(), o.DesignLinks(), o.History(), o.Progress(), o.Version(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, o.Progress(), restored.Progress())
		assert.True(t, restored.StageState(order.StagePrepress).SubProcess("exposure").IsCompleted())
		assert.Len(t, restored.History(), len(o.History()))
	})

	t.Run("missing_stages_get_safe_defaults", func(t *testing.T) {
		restored, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-7", testSpec(t), order.Submitted, nil,
			nil, nil, nil, nil, 25, 1,
		)

		require.NoError(t, err)
		for _, stage := range order.AllStages() {
			require.NotNil(t, restored.StageState(stage))
			assert.Equal(t, order.StageNotStarted, restored.StageState(stage).Status)
		}
	})

	t.Run("rejects_non_positive_version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-7", testSpec(t), order.Submitted, nil,
			nil, nil, nil, nil, 25, 0,
		)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_HistoryAccessorReturnsCopy(t *testing.T) {
	o := newSubmittedOrder(t)

	history := o.History()
	history[0].Action = "tampered"

	assert.Equal(t, order.ActionOrderSubmitted, o.History()[0].Action)
}
