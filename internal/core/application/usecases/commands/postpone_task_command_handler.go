package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/core/ports"
)

// PostponeTaskCommandHandler reschedules an assignment. The assignment
// terminates as Failed, its parcels fire Postpone back to the warehouse
// so a later sweep can pick them up, and the owning session tallies one
// delayed task. One parcel-postponed event per parcel goes out after
// commit.
type PostponeTaskCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewPostponeTaskCommandHandler creates a handler for task postponement.
func NewPostponeTaskCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PostponeTaskCommandHandler {
	return PostponeTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "postpone_task"),
	}
}

// Handle processes the task postponement command.
func (h PostponeTaskCommandHandler) Handle(ctx context.Context, cmd PostponeTaskCommand) error {
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
	postponed, err := assignmentRepo.GetOpenByShipperAndParcel(ctx, cmd.ShipperID(), cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now()
	reason := fmt.Sprintf("postponed to %s: %s", cmd.PostponedTo().Format(time.RFC3339), cmd.Reason())
	if err = postponed.Fail(now, reason); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, postponed); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetByIDs(ctx, postponed.ParcelIDs())
	if err != nil {
		return err
	}
	for _, p := range parcels {
		if err = p.Apply(parcel.Postpone); err != nil {
			return err
		}
		p.ReleaseAssignment()
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = recordOnSession(ctx, uow, postponed, (*session.Session).RecordDelayed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishPostponed(ctx, postponed, parcels, cmd)
	return nil
}

func (h PostponeTaskCommandHandler) publishPostponed(
	ctx context.Context,
	postponed *assignment.Assignment,
	parcels []*parcel.Parcel,
	cmd PostponeTaskCommand,
) {
	sessionID := ""
	if postponed.Session() != nil {
		sessionID = postponed.Session().String()
	}

	for _, p := range parcels {
		event := ports.ParcelPostponedEvent{
			EventMeta: ports.EventMeta{
				EventID:       kernel.NewUUID().String(),
				SourceService: ports.SourceService,
			},
			AssignmentID:  postponed.ID().String(),
			ParcelID:      p.ID().String(),
			SessionID:     sessionID,
			DeliveryManID: postponed.ShipperID().String(),
			PostponedTo:   cmd.PostponedTo(),
			Reason:        cmd.Reason(),
		}

		if err := h.publisher.PublishParcelPostponed(ctx, event); err != nil {
			h.logger.Error("failed to publish parcel-postponed event",
				"assignmentId", event.AssignmentID, "parcelId", event.ParcelID, "error", err)
		}
	}
}
