package actor

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Role represents the capacity in which a person acts on an order.
// Authorization for status transitions and sub-process completion is
// decided per role by the order state machine.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient is the customer who submitted the order.
	RoleClient

	// RoleDesigner produces the design and its attachments.
	RoleDesigner

	// RolePrepress runs the plate-making sub-processes.
	RolePrepress

	// RoleManager oversees production and may drive any transition.
	RoleManager

	// RoleCourier handles physical transport for shipping-company deliveries.
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleClient:   "client",
		RoleDesigner: "designer",
		RolePrepress: "prepress",
		RoleManager:  "manager",
		RoleCourier:  "courier",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient:   "client",
		RoleDesigner: "designer",
		RolePrepress: "prepress",
		RoleManager:  "manager",
		RoleCourier:  "courier",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsStaff reports whether the role belongs to shop personnel
// (everyone except the client).
func (r Role) IsStaff() bool {
	switch r {
	case RoleDesigner, RolePrepress, RoleManager, RoleCourier:
		return true
	default:
		return false
	}
}
