package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand reports a successful delivery of an assignment's
// parcels at the door.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	parcelID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a validated task completion command.
func NewCompleteTaskCommand(shipperID, parcelID kernel.UUID) (CompleteTaskCommand, error) {
	cmd := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTaskIDs(shipperID, parcelID); err != nil {
		return CompleteTaskCommand{}, err
	}
	cmd.shipperID = shipperID
	cmd.parcelID = parcelID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// ShipperID returns the acting shipper.
func (c CompleteTaskCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelID returns a parcel of the delivered assignment.
func (c CompleteTaskCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
