package commands

import (
	"context"
	"time"

	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
)

const refusedReason = "refused by shipper"

// RefuseTaskCommandHandler terminates an assignment the shipper
// declined. Parcels not yet on route only lose their binding and stay in
// the warehouse; parcels already on route fail their delivery. A session
// is tallied only when the assignment was already bound to one.
type RefuseTaskCommandHandler struct {
	uowFactory UoWFactory
}

// NewRefuseTaskCommandHandler creates a handler for task refusal.
func NewRefuseTaskCommandHandler(uowFactory UoWFactory) RefuseTaskCommandHandler {
	return RefuseTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task refusal command.
func (h RefuseTaskCommandHandler) Handle(ctx context.Context, cmd RefuseTaskCommand) error {
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
	refused, err := assignmentRepo.GetOpenByShipperAndParcel(ctx, cmd.ShipperID(), cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = refused.Fail(now, refusedReason); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, refused); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetByIDs(ctx, refused.ParcelIDs())
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

	if err = recordOnSession(ctx, uow, refused, (*session.Session).RecordFailed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
