package commands

import (
	"context"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
)

// FailTaskCommandHandler terminates an assignment as undelivered. Every
// parcel still on route fails its delivery and is released, and the
// owning session tallies one failed task.
type FailTaskCommandHandler struct {
	uowFactory UoWFactory
}

// NewFailTaskCommandHandler creates a handler for task failure.
func NewFailTaskCommandHandler(uowFactory UoWFactory) FailTaskCommandHandler {
	return FailTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task failure command.
func (h FailTaskCommandHandler) Handle(ctx context.Context, cmd FailTaskCommand) error {
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
	failed, err := assignmentRepo.GetOpenByShipperAndParcel(ctx, cmd.ShipperID(), cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = failed.Fail(now, cmd.Reason()); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, failed); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetByIDs(ctx, failed.ParcelIDs())
	if err != nil {
		return err
	}
	for _, p := range parcels {
		if p.Status() == parcel.OnRoute {
			if err = p.Apply(parcel.CanNotDeliver); err != nil {
				return err
			}
		}
		p.ReleaseAssignment()
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = recordOnSession(ctx, uow, failed, (*session.Session).RecordFailed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// recordOnSession advances the owning session's counters with the given
// tally method, skipping assignments not yet bound to a session.
func recordOnSession(
	ctx context.Context,
	uow UoW,
	terminated *assignment.Assignment,
	record func(*session.Session) error,
) error {
	if terminated.Session() == nil {
		return nil
	}

	sessionRepo := uow.SessionRepository()
	owning, err := sessionRepo.Get(ctx, *terminated.Session())
	if err != nil {
		return err
	}
	if err = record(owning); err != nil {
		return err
	}
	return sessionRepo.Update(ctx, owning)
}
