package assignment

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor")
	// ErrParcelsAreRequired is returned when creating an assignment with
	// an empty parcel list.
	ErrParcelsAreRequired = errs.NewValueIsRequiredError("parcelIDs")
	// ErrSessionAlreadyBound is returned when starting an assignment that
	// already belongs to another session.
	ErrSessionAlreadyBound = errors.New("assignment is already bound to a session")
)

// Assignment is the aggregate root for a unit of delivery work: one
// shipper, one delivery-address grouping, and an ordered list of parcel
// references. Assignments are never deleted, only driven to a terminal
// status (Completed or Failed).
//
// Invariants:
//   - All referenced parcels share one delivery address (enforced by the
//     application layer at creation, since parcels live in their own
//     aggregate)
//   - Status transitions follow the Status state machine
//   - A session is bound exactly once, when the assignment starts
type Assignment struct {
	id                kernel.UUID
	shipperID         kernel.UUID
	deliveryAddressID kernel.UUID
	parcelIDs         []kernel.UUID
	status            Status
	sessionID         *kernel.UUID
	sequence          int
	acceptedAt        *time.Time
	completedAt       *time.Time
	failReason        string
	version           int

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in Pending status. The parcel list
// must be non-empty; sequence is the stop's position within the planned
// route (0 for manual assignments).
func NewAssignment(
	id kernel.UUID,
	shipperID kernel.UUID,
	deliveryAddressID kernel.UUID,
	parcelIDs []kernel.UUID,
	sequence int,
) (*Assignment, error) {
	a := &Assignment{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setShipperID(shipperID),
		a.setDeliveryAddressID(deliveryAddressID),
		a.setParcelIDs(parcelIDs),
		a.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	shipperID kernel.UUID,
	deliveryAddressID kernel.UUID,
	parcelIDs []kernel.UUID,
	sequence int,
	status Status,
	sessionID *kernel.UUID,
	acceptedAt *time.Time,
	completedAt *time.Time,
	failReason string,
	version int,
) (*Assignment, error) {
	a, err := NewAssignment(id, shipperID, deliveryAddressID, parcelIDs, sequence)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if sessionID != nil {
		if err = sessionID.Validate(); err != nil {
			return nil, err
		}
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	a.status = status
	a.sessionID = sessionID
	a.acceptedAt = acceptedAt
	a.completedAt = completedAt
	a.failReason = failReason
	a.version = version
	return a, nil
}

// Validate ensures the assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ShipperID returns the shipper the work is routed to.
func (a *Assignment) ShipperID() kernel.UUID {
	return a.shipperID
}

// DeliveryAddressID returns the shared delivery-address grouping.
func (a *Assignment) DeliveryAddressID() kernel.UUID {
	return a.deliveryAddressID
}

// ParcelIDs returns the ordered parcel references. The returned slice is
// a copy; mutating it does not affect the aggregate.
func (a *Assignment) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(a.parcelIDs))
	copy(ids, a.parcelIDs)
	return ids
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// Session returns the owning session's id, or nil before the assignment
// is started.
func (a *Assignment) Session() *kernel.UUID {
	return a.sessionID
}

// Sequence returns the stop's position within the planned route.
func (a *Assignment) Sequence() int {
	return a.sequence
}

// AcceptedAt returns the shipper's scan time, or nil if never accepted.
func (a *Assignment) AcceptedAt() *time.Time {
	return a.acceptedAt
}

// CompletedAt returns the terminal timestamp, or nil while open.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// FailReason returns the recorded failure reason, empty for completed or
// open assignments.
func (a *Assignment) FailReason() string {
	return a.failReason
}

// Version returns the optimistic-concurrency version.
func (a *Assignment) Version() int {
	return a.version
}

// Accept acknowledges the assignment and stamps the scan time.
func (a *Assignment) Accept(at time.Time) error {
	next, err := a.status.Accept()
	if err != nil {
		return err
	}

	a.status = next
	a.acceptedAt = &at
	return nil
}

// Start binds the assignment to a session and moves it to InProgress.
// An assignment already bound to a different session cannot be started
// again.
func (a *Assignment) Start(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	if a.sessionID != nil && !a.sessionID.IsEqual(sessionID) {
		return ErrSessionAlreadyBound
	}

	next, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = next
	a.sessionID = &sessionID
	return nil
}

// Complete marks the assignment delivered.
func (a *Assignment) Complete(at time.Time) error {
	next, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = next
	a.completedAt = &at
	return nil
}

// Fail terminates the assignment as undelivered, recording the reason.
func (a *Assignment) Fail(at time.Time, reason string) error {
	next, err := a.status.Fail()
	if err != nil {
		return err
	}

	a.status = next
	a.completedAt = &at
	a.failReason = reason
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperID", err)
	}
	a.shipperID = id
	return nil
}

func (a *Assignment) setDeliveryAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddressID", err)
	}
	a.deliveryAddressID = id
	return nil
}

func (a *Assignment) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrParcelsAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("parcelIDs", err)
		}
	}
	a.parcelIDs = make([]kernel.UUID, len(ids))
	copy(a.parcelIDs, ids)
	return nil
}

func (a *Assignment) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidError("sequence")
	}
	a.sequence = sequence
	return nil
}
