package parcel

import (
	"errors"
	"fmt"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
	// ErrCodeIsRequired is returned when a parcel is created without a tracking code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrZoneIsRequired is returned when a parcel is created without a zone id.
	ErrZoneIsRequired = errs.NewValueIsRequiredError("zoneID")
	// ErrParcelAlreadyBound is returned when binding a parcel that already
	// belongs to an open assignment.
	ErrParcelAlreadyBound = errors.New("parcel is already bound to an assignment")
)

// Parcel is the aggregate root for a physical shipment item tracked
// through delivery states. Its status is mutated exclusively through the
// Apply method, which drives the pure Transition table; the aggregate
// itself performs no I/O.
//
// Invariants:
//   - Must have a valid unique identifier and non-empty tracking code
//   - Must have a valid delivery location and delivery-address reference
//   - Priority is non-negative (0 = most urgent)
//   - Status only changes through legal lifecycle events
type Parcel struct {
	id                kernel.UUID
	code              string
	status            Status
	location          kernel.GeoPoint
	deliveryAddressID kernel.UUID
	receiverID        kernel.UUID
	priority          int
	zoneID            string
	assignmentID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel on intake, in InWarehouse status and not
// bound to any assignment.
func NewParcel(
	id kernel.UUID,
	code string,
	location kernel.GeoPoint,
	deliveryAddressID kernel.UUID,
	receiverID kernel.UUID,
	priority int,
	zoneID string,
) (*Parcel, error) {
	p := &Parcel{
		status: InWarehouse,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setLocation(location),
		p.setDeliveryAddressID(deliveryAddressID),
		p.setReceiverID(receiverID),
		p.setPriority(priority),
		p.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its
// current status and assignment binding.
func RestoreParcel(
	id kernel.UUID,
	code string,
	location kernel.GeoPoint,
	deliveryAddressID kernel.UUID,
	receiverID kernel.UUID,
	priority int,
	zoneID string,
	status Status,
	assignmentID *kernel.UUID,
) (*Parcel, error) {
	p, err := NewParcel(id, code, location, deliveryAddressID, receiverID, priority, zoneID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if assignmentID != nil {
		if err = assignmentID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.assignmentID = assignmentID
	return p, nil
}

// Validate ensures the parcel was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Code returns the human-readable tracking code.
func (p *Parcel) Code() string {
	return p.code
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Location returns the delivery destination.
func (p *Parcel) Location() kernel.GeoPoint {
	return p.location
}

// DeliveryAddressID returns the delivery-address grouping reference.
// Parcels sharing this id may be bundled into one assignment.
func (p *Parcel) DeliveryAddressID() kernel.UUID {
	return p.deliveryAddressID
}

// ReceiverID returns the receiving customer's identifier.
func (p *Parcel) ReceiverID() kernel.UUID {
	return p.receiverID
}

// Priority returns the urgency tier; 0 is the most urgent.
func (p *Parcel) Priority() int {
	return p.priority
}

// ZoneID returns the geographic zone the delivery address belongs to.
func (p *Parcel) ZoneID() string {
	return p.zoneID
}

// Assignment returns the owning assignment's id, or nil when the parcel
// is unassigned.
func (p *Parcel) Assignment() *kernel.UUID {
	return p.assignmentID
}

// Apply drives the parcel state machine with the given lifecycle event.
// On an illegal event the status is left unchanged and the transition
// error propagates to the caller.
func (p *Parcel) Apply(event Event) error {
	next, err := Transition(p.status, event)
	if err != nil {
		return err
	}

	p.status = next
	return nil
}

// BindAssignment attaches the parcel to an assignment. A parcel already
// bound to an assignment cannot be bound again until released.
func (p *Parcel) BindAssignment(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	if p.assignmentID != nil {
		return ErrParcelAlreadyBound
	}

	p.assignmentID = &assignmentID
	return nil
}

// ReleaseAssignment detaches the parcel from its assignment, making it
// eligible for a future sweep.
func (p *Parcel) ReleaseAssignment() {
	p.assignmentID = nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Parcel) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Parcel) setDeliveryAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddressID", err)
	}
	p.deliveryAddressID = id
	return nil
}

func (p *Parcel) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverID", err)
	}
	p.receiverID = id
	return nil
}

func (p *Parcel) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is negative", priority))
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setZoneID(zoneID string) error {
	if zoneID == "" {
		return ErrZoneIsRequired
	}
	p.zoneID = zoneID
	return nil
}
