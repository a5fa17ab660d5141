package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var ErrRefuseTaskCommandIsNotConstructed = errors.New(
	"RefuseTaskCommand must be created via NewRefuseTaskCommand constructor",
)

// RefuseTaskCommand records the shipper declining an assignment before
// or during the session.
type RefuseTaskCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	parcelID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefuseTaskCommand creates a validated task refusal command.
func NewRefuseTaskCommand(shipperID, parcelID kernel.UUID) (RefuseTaskCommand, error) {
	cmd := RefuseTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTaskIDs(shipperID, parcelID); err != nil {
		return RefuseTaskCommand{}, err
	}
	cmd.shipperID = shipperID
	cmd.parcelID = parcelID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefuseTaskCommand) Validate() error {
	return c.guard.Validate(ErrRefuseTaskCommandIsNotConstructed)
}

// ShipperID returns the acting shipper.
func (c RefuseTaskCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelID returns a parcel of the refused assignment.
func (c RefuseTaskCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
