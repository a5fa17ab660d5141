package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrCompleteSessionCommandIsNotConstructed = errors.New(
	"CompleteSessionCommand must be created via NewCompleteSessionCommand constructor",
)

// CompleteSessionCommand closes a session, failing whatever work is
// still open. Issued by an operator, by the shipper's app after the last
// task, or by the auto-close sweep.
type CompleteSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteSessionCommand creates a validated session completion command.
func NewCompleteSessionCommand(sessionID kernel.UUID) (CompleteSessionCommand, error) {
	cmd := CompleteSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return CompleteSessionCommand{}, errs.NewValueIsRequiredErrorWithCause("sessionId", err)
	}
	cmd.sessionID = sessionID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteSessionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSessionCommandIsNotConstructed)
}

// SessionID returns the session to close.
func (c CompleteSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
