package commands

import (
	"context"
	"log/slog"

	"delivery/internal/core/domain/model/kernel"
)

// AutoCloseSessionsCommandHandler force-completes sessions that outlived
// their shift window. Each session closes through the idempotent
// completion handler in its own transaction; a failure on one session is
// logged and the sweep moves on.
type AutoCloseSessionsCommandHandler struct {
	uowFactory      UoWFactory
	completeHandler CompleteSessionCommandHandler
	logger          *slog.Logger
}

// NewAutoCloseSessionsCommandHandler creates a handler for the auto-close sweep.
func NewAutoCloseSessionsCommandHandler(
	uowFactory UoWFactory,
	completeHandler CompleteSessionCommandHandler,
	logger *slog.Logger,
) AutoCloseSessionsCommandHandler {
	return AutoCloseSessionsCommandHandler{
		uowFactory:      uowFactory,
		completeHandler: completeHandler,
		logger:          logger.With("component", "auto_close_sessions"),
	}
}

// Handle processes the sweep command and returns the number of sessions
// successfully closed.
func (h AutoCloseSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd AutoCloseSessionsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.collectOpenSessions(ctx, cmd)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, id := range ids {
		completeCmd, cerr := NewCompleteSessionCommand(id)
		if cerr != nil {
			h.logger.Error("failed to build completion command", "sessionId", id.String(), "error", cerr)
			continue
		}

		if cerr = h.completeHandler.Handle(ctx, completeCmd); cerr != nil {
			h.logger.Error("failed to auto-close session", "sessionId", id.String(), "error", cerr)
			continue
		}
		closed++
	}

	return closed, nil
}

func (h AutoCloseSessionsCommandHandler) collectOpenSessions(
	ctx context.Context,
	cmd AutoCloseSessionsCommand,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions, err := uow.SessionRepository().GetOpenStartedBetween(ctx, cmd.From(), cmd.To())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID())
	}
	return ids, nil
}
