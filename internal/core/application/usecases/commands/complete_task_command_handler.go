package commands

import (
	"context"
	"log/slog"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/core/ports"
)

// CompleteTaskCommandHandler marks an assignment delivered. Every parcel
// of the assignment moves to Delivered and is released from its binding,
// the owning session tallies one completed task, and one
// assignment-completed event per parcel is published after commit so the
// notification service can reach each receiver.
type CompleteTaskCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompleteTaskCommandHandler creates a handler for task completion.
func NewCompleteTaskCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "complete_task"),
	}
}

// Handle processes the task completion command.
func (h CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()
	completed, err := assignmentRepo.GetOpenByShipperAndParcel(ctx, cmd.ShipperID(), cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = completed.Complete(now); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, completed); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetByIDs(ctx, completed.ParcelIDs())
	if err != nil {
		return err
	}
	for _, p := range parcels {
		if err = p.Apply(parcel.DeliverySuccessful); err != nil {
			return err
		}
		p.ReleaseAssignment()
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = recordOnSession(ctx, uow, completed, (*session.Session).RecordCompleted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishCompleted(ctx, completed, parcels, now)
	return nil
}

func (h CompleteTaskCommandHandler) publishCompleted(
	ctx context.Context,
	completed *assignment.Assignment,
	parcels []*parcel.Parcel,
	at time.Time,
) {
	sessionID := ""
	if completed.Session() != nil {
		sessionID = completed.Session().String()
	}

	for _, p := range parcels {
		event := ports.AssignmentCompletedEvent{
			EventMeta: ports.EventMeta{
				EventID:       kernel.NewUUID().String(),
				SourceService: ports.SourceService,
			},
			AssignmentID:  completed.ID().String(),
			ParcelID:      p.ID().String(),
			ParcelCode:    p.Code(),
			SessionID:     sessionID,
			DeliveryManID: completed.ShipperID().String(),
			ReceiverID:    p.ReceiverID().String(),
			CompletedAt:   at,
		}

		if err := h.publisher.PublishAssignmentCompleted(ctx, event); err != nil {
			h.logger.Error("failed to publish assignment-completed event",
				"assignmentId", event.AssignmentID, "parcelId", event.ParcelID, "error", err)
		}
	}
}
