package commands

import (
	"context"
	"log/slog"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/core/ports"
)

const undeliveredReason = "session closed with undelivered tasks"

// CompleteSessionCommandHandler closes a session. Completion is
// idempotent: a session already in a terminal state is left untouched
// and no event is emitted. Otherwise every still-open assignment fails,
// its parcels return to the warehouse pipeline, and one
// session-completed event goes out after the transaction commits.
//
// A publish failure is logged and does not undo the committed close; the
// state transition is the source of truth.
type CompleteSessionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompleteSessionCommandHandler creates a handler for session completion.
func NewCompleteSessionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteSessionCommandHandler {
	return CompleteSessionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "complete_session"),
	}
}

// Handle processes the session completion command.
func (h CompleteSessionCommandHandler) Handle(ctx context.Context, cmd CompleteSessionCommand) error {
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
	closing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if closing.Status().IsTerminal() {
		return nil
	}

	now := time.Now()
	parcelIDs, receiverIDs, err := failOpenAssignments(ctx, uow, closing, now, undeliveredReason)
	if err != nil {
		return err
	}

	if err = closing.Complete(now); err != nil {
		return err
	}
	if err = sessionRepo.Update(ctx, closing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishCompleted(ctx, closing, parcelIDs, receiverIDs)
	return nil
}

func (h CompleteSessionCommandHandler) publishCompleted(
	ctx context.Context,
	closed *session.Session,
	parcelIDs, receiverIDs []string,
) {
	counters := closed.Counters()
	event := ports.SessionCompletedEvent{
		EventMeta: ports.EventMeta{
			EventID:       kernel.NewUUID().String(),
			SourceService: ports.SourceService,
		},
		SessionID:      closed.ID().String(),
		DeliveryManID:  closed.ShipperID().String(),
		StartTime:      closed.StartTime(),
		EndTime:        *closed.EndTime(),
		TotalTasks:     counters.TotalTasks,
		CompletedTasks: counters.CompletedTasks,
		FailedTasks:    counters.FailedTasks,
		DelayedTasks:   counters.DelayedTasks,
		ParcelIDs:      parcelIDs,
		ReceiverIDs:    receiverIDs,
	}

	if err := h.publisher.PublishSessionCompleted(ctx, event); err != nil {
		h.logger.Error("failed to publish session-completed event",
			"sessionId", event.SessionID, "error", err)
	}
}

// failOpenAssignments terminates the session's remaining open
// assignments as undelivered. Parcels still on route fail their
// delivery, delayed parcels return to the warehouse, and every touched
// parcel is released from its assignment binding. The session counters
// are advanced one failed task per assignment.
func failOpenAssignments(
	ctx context.Context,
	uow UoW,
	closing *session.Session,
	now time.Time,
	reason string,
) (parcelIDs, receiverIDs []string, err error) {
	assignmentRepo := uow.AssignmentRepository()
	parcelRepo := uow.ParcelRepository()

	open, err := assignmentRepo.GetOpenBySession(ctx, closing.ID())
	if err != nil {
		return nil, nil, err
	}

	for _, a := range open {
		if err = a.Fail(now, reason); err != nil {
			return nil, nil, err
		}
		if err = assignmentRepo.Update(ctx, a); err != nil {
			return nil, nil, err
		}

		parcels, perr := parcelRepo.GetByIDs(ctx, a.ParcelIDs())
		if perr != nil {
			return nil, nil, perr
		}
		for _, p := range parcels {
			switch p.Status() {
			case parcel.OnRoute:
				if err = p.Apply(parcel.CanNotDeliver); err != nil {
					return nil, nil, err
				}
			case parcel.Delayed:
				if err = p.Apply(parcel.EndSession); err != nil {
					return nil, nil, err
				}
			}
			p.ReleaseAssignment()
			if err = parcelRepo.Update(ctx, p); err != nil {
				return nil, nil, err
			}

			parcelIDs = append(parcelIDs, p.ID().String())
			receiverIDs = append(receiverIDs, p.ReceiverID().String())
		}

		if err = closing.RecordFailed(); err != nil {
			return nil, nil, err
		}
	}

	return parcelIDs, receiverIDs, nil
}
