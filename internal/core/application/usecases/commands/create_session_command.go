package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// CreateSessionCommand opens a working session for a shipper over a set
// of already-created assignments.
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	shipperID     kernel.UUID
	assignmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a validated session creation command.
// The assignment list must be non-empty.
func NewCreateSessionCommand(
	sessionID kernel.UUID,
	shipperID kernel.UUID,
	assignmentIDs []kernel.UUID,
) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setShipperID(shipperID),
		cmd.setAssignmentIDs(assignmentIDs),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c CreateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ShipperID returns the shipper opening the session.
func (c CreateSessionCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// AssignmentIDs returns the assignments to bind.
func (c CreateSessionCommand) AssignmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.assignmentIDs))
	copy(ids, c.assignmentIDs)
	return ids
}

func (c *CreateSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sessionId", err)
	}
	c.sessionID = id
	return nil
}

func (c *CreateSessionCommand) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	c.shipperID = id
	return nil
}

func (c *CreateSessionCommand) setAssignmentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("assignmentIds")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("assignmentIds", err)
		}
	}
	c.assignmentIDs = make([]kernel.UUID, len(ids))
	copy(c.assignmentIDs, ids)
	return nil
}
