package commands

import (
	"context"
	"time"
)

// FailSessionCommandHandler aborts a session on operator request. The
// cascade matches completion: open assignments fail, their parcels
// return to the warehouse pipeline, and the session lands in Failed
// carrying the reason. No event is emitted for an aborted session.
type FailSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewFailSessionCommandHandler creates a handler for session failure.
func NewFailSessionCommandHandler(uowFactory UoWFactory) FailSessionCommandHandler {
	return FailSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session failure command. Failing an
// already-terminal session is an idempotent no-op.
func (h FailSessionCommandHandler) Handle(ctx context.Context, cmd FailSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	failing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if failing.Status().IsTerminal() {
		return nil
	}

	now := time.Now()
	if _, _, err = failOpenAssignments(ctx, uow, failing, now, cmd.Reason()); err != nil {
		return err
	}

	if err = failing.Fail(now, cmd.Reason()); err != nil {
		return err
	}
	if err = sessionRepo.Update(ctx, failing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
