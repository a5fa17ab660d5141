package commands

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrPostponeTaskCommandIsNotConstructed = errors.New(
	"PostponeTaskCommand must be created via NewPostponeTaskCommand constructor",
)

// PostponeTaskCommand reschedules an in-progress delivery at the
// customer's or shipper's request.
type PostponeTaskCommand struct { //nolint:recvcheck //using for validation
	shipperID   kernel.UUID
	parcelID    kernel.UUID
	postponedTo time.Time
	reason      string

	guard guard.ConstructorGuard
}

// NewPostponeTaskCommand creates a validated task postponement command.
// The requested time and the reason are mandatory.
func NewPostponeTaskCommand(
	shipperID, parcelID kernel.UUID,
	postponedTo time.Time,
	reason string,
) (PostponeTaskCommand, error) {
	cmd := PostponeTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTaskIDs(shipperID, parcelID); err != nil {
		return PostponeTaskCommand{}, err
	}
	if postponedTo.IsZero() {
		return PostponeTaskCommand{}, errs.NewValueIsRequiredError("postponedTo")
	}
	if reason == "" {
		return PostponeTaskCommand{}, errs.NewValueIsRequiredError("reason")
	}
	cmd.shipperID = shipperID
	cmd.parcelID = parcelID
	cmd.postponedTo = postponedTo
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostponeTaskCommand) Validate() error {
	return c.guard.Validate(ErrPostponeTaskCommandIsNotConstructed)
}

// ShipperID returns the acting shipper.
func (c PostponeTaskCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelID returns a parcel of the postponed assignment.
func (c PostponeTaskCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// PostponedTo returns the requested retry time.
func (c PostponeTaskCommand) PostponedTo() time.Time {
	return c.postponedTo
}

// Reason returns the audit reason.
func (c PostponeTaskCommand) Reason() string {
	return c.reason
}
