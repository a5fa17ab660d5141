package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrFailSessionCommandIsNotConstructed = errors.New(
	"FailSessionCommand must be created via NewFailSessionCommand constructor",
)

// FailSessionCommand aborts a session, tagging the reason for audit.
type FailSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewFailSessionCommand creates a validated session failure command. The
// reason is mandatory.
func NewFailSessionCommand(sessionID kernel.UUID, reason string) (FailSessionCommand, error) {
	cmd := FailSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return FailSessionCommand{}, errs.NewValueIsRequiredErrorWithCause("sessionId", err)
	}
	if reason == "" {
		return FailSessionCommand{}, errs.NewValueIsRequiredError("reason")
	}
	cmd.sessionID = sessionID
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailSessionCommand) Validate() error {
	return c.guard.Validate(ErrFailSessionCommandIsNotConstructed)
}

// SessionID returns the session to abort.
func (c FailSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Reason returns the audit reason.
func (c FailSessionCommand) Reason() string {
	return c.reason
}
