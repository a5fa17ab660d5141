package commands

import (
	"errors"
	"time"

	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrAutoCloseSessionsCommandIsNotConstructed = errors.New(
	"AutoCloseSessionsCommand must be created via NewAutoCloseSessionsCommand constructor",
)

// AutoCloseSessionsCommand sweeps sessions whose start time falls within
// the given shift window and force-completes the ones still open.
type AutoCloseSessionsCommand struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewAutoCloseSessionsCommand creates a validated sweep command over the
// [from, to] shift window.
func NewAutoCloseSessionsCommand(from, to time.Time) (AutoCloseSessionsCommand, error) {
	cmd := AutoCloseSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if from.IsZero() {
		return AutoCloseSessionsCommand{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return AutoCloseSessionsCommand{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return AutoCloseSessionsCommand{}, errs.NewValueIsInvalidError("to")
	}
	cmd.from = from
	cmd.to = to

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoCloseSessionsCommand) Validate() error {
	return c.guard.Validate(ErrAutoCloseSessionsCommandIsNotConstructed)
}

// From returns the start of the shift window.
func (c AutoCloseSessionsCommand) From() time.Time {
	return c.from
}

// To returns the end of the shift window.
func (c AutoCloseSessionsCommand) To() time.Time {
	return c.to
}
