package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrAcceptTaskCommandIsNotConstructed = errors.New(
	"AcceptTaskCommand must be created via NewAcceptTaskCommand constructor",
)

// AcceptTaskCommand records the shipper scanning a parcel of their
// pending assignment. Task actions address work by (shipper, parcel)
// since that is what the shipper's scanner knows.
type AcceptTaskCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	parcelID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptTaskCommand creates a validated task acceptance command.
func NewAcceptTaskCommand(shipperID, parcelID kernel.UUID) (AcceptTaskCommand, error) {
	cmd := AcceptTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTaskIDs(shipperID, parcelID); err != nil {
		return AcceptTaskCommand{}, err
	}
	cmd.shipperID = shipperID
	cmd.parcelID = parcelID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTaskCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTaskCommandIsNotConstructed)
}

// ShipperID returns the acting shipper.
func (c AcceptTaskCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelID returns the scanned parcel.
func (c AcceptTaskCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func validateTaskIDs(shipperID, parcelID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryManId", err)
	}
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	return nil
}
