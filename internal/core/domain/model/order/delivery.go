package order

import (
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// DeliveryMode is the chosen handoff method for a finished order.
type DeliveryMode int

const (
	// DeliveryModeUnknown represents an invalid or undefined mode.
	DeliveryModeUnknown DeliveryMode = iota

	// DeliveryModeDirect is a direct handover by shop staff.
	DeliveryModeDirect

	// DeliveryModeClientCollection means the client collects the order themselves.
	DeliveryModeClientCollection

	// DeliveryModeShippingCompany means a shipping company transports the order;
	// completion is gated on a courier having picked up the shipment.
	DeliveryModeShippingCompany
)

// Wire vocabulary for delivery modes.
func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		DeliveryModeUnknown:          "unknown",
		DeliveryModeDirect:           "direct",
		DeliveryModeClientCollection: "client-collection",
		DeliveryModeShippingCompany:  "shipping-company",
	}
}

func getValidDeliveryModeStrings() map[DeliveryMode]string {
	//nolint:exhaustive // DeliveryModeUnknown is intentionally excluded as it's invalid
	return map[DeliveryMode]string{
		DeliveryModeDirect:           "direct",
		DeliveryModeClientCollection: "client-collection",
		DeliveryModeShippingCompany:  "shipping-company",
	}
}

// DeliveryModeFromString parses the wire representation of a delivery mode.
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, str := range getValidDeliveryModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return DeliveryModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery mode is invalid",
		fmt.Errorf("%q is not a known delivery mode", s),
	)
}

// Validate checks that the DeliveryMode is one of the defined values.
func (m DeliveryMode) Validate() error {
	if _, ok := getValidDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery mode is invalid",
			fmt.Errorf("%d is not a valid delivery mode", m),
		)
	}
	return nil
}

// String returns the wire name of the delivery mode.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// DeliveryInfo records the chosen handoff method and its mode-specific details.
// It belongs to the Delivery stage of an order.
type DeliveryInfo struct {
	mode            DeliveryMode
	destination     string
	shipmentCompany string
	assignedCourier *kernel.UUID
	createdAt       time.Time
}

// NewDeliveryInfo creates delivery details for the given mode.
// ShippingCompany requires a shipment company name; Direct and ClientCollection
// accept an optional destination override (display-only, non-authoritative).
func NewDeliveryInfo(mode DeliveryMode, destination, shipmentCompany string, createdAt time.Time) (DeliveryInfo, error) {
	if err := mode.Validate(); err != nil {
		return DeliveryInfo{}, err
	}

	if mode == DeliveryModeShippingCompany && shipmentCompany == "" {
		return DeliveryInfo{}, errs.NewValueIsRequiredError("shipmentCompany")
	}

	return DeliveryInfo{
		mode:            mode,
		destination:     destination,
		shipmentCompany: shipmentCompany,
		createdAt:       createdAt,
	}, nil
}

// RestoreDeliveryInfo reconstructs delivery details from persistence,
// including a courier assignment recorded after the mode was chosen.
func RestoreDeliveryInfo(
	mode DeliveryMode,
	destination, shipmentCompany string,
	assignedCourier *kernel.UUID,
	createdAt time.Time,
) (DeliveryInfo, error) {
	info, err := NewDeliveryInfo(mode, destination, shipmentCompany, createdAt)
	if err != nil {
		return DeliveryInfo{}, err
	}
	info.assignedCourier = assignedCourier
	return info, nil
}

// Mode returns the chosen delivery mode.
func (d DeliveryInfo) Mode() DeliveryMode {
	return d.mode
}

// Destination returns the optional address override. Display-only.
func (d DeliveryInfo) Destination() string {
	return d.destination
}

// ShipmentCompany returns the shipping company name. Set only for ShippingCompany mode.
func (d DeliveryInfo) ShipmentCompany() string {
	return d.shipmentCompany
}

// AssignedCourier returns the courier who picked up the shipment, or nil.
func (d DeliveryInfo) AssignedCourier() *kernel.UUID {
	if d.assignedCourier == nil {
		return nil
	}
	id := *d.assignedCourier
	return &id
}

// CreatedAt returns when the delivery mode was chosen.
func (d DeliveryInfo) CreatedAt() time.Time {
	return d.createdAt
}

// CanComplete is the pure predicate consulted before an order may move from
// ReadyForDelivery to Completed. Direct and ClientCollection handoffs are
// confirmed out-of-band by the confirming actor; ShippingCompany requires a
// courier pickup to have been recorded.
func (d DeliveryInfo) CanComplete() error {
	if d.mode == DeliveryModeShippingCompany && d.assignedCourier == nil {
		return errs.NewPreconditionNotMetError("no courier has picked up the shipment")
	}
	return nil
}

// assignCourier records the courier pickup event. Idempotent overwrite.
func (d *DeliveryInfo) assignCourier(courierID kernel.UUID) {
	d.assignedCourier = &courierID
}
