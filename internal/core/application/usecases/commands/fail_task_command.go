package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrFailTaskCommandIsNotConstructed = errors.New(
	"FailTaskCommand must be created via NewFailTaskCommand constructor",
)

// FailTaskCommand reports that a delivery attempt could not be made
// (nobody home, wrong address, accident).
type FailTaskCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	parcelID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewFailTaskCommand creates a validated task failure command. The
// reason is mandatory.
func NewFailTaskCommand(shipperID, parcelID kernel.UUID, reason string) (FailTaskCommand, error) {
	cmd := FailTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTaskIDs(shipperID, parcelID); err != nil {
		return FailTaskCommand{}, err
	}
	if reason == "" {
		return FailTaskCommand{}, errs.NewValueIsRequiredError("reason")
	}
	cmd.shipperID = shipperID
	cmd.parcelID = parcelID
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailTaskCommand) Validate() error {
	return c.guard.Validate(ErrFailTaskCommandIsNotConstructed)
}

// ShipperID returns the acting shipper.
func (c FailTaskCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelID returns a parcel of the failed assignment.
func (c FailTaskCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Reason returns the audit reason.
func (c FailTaskCommand) Reason() string {
	return c.reason
}
