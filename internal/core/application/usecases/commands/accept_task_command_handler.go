package commands

import (
	"context"
	"time"
)

// AcceptTaskCommandHandler acknowledges an assignment on the shipper's
// scan, stamping the acceptance time. Parcel status does not move here;
// parcels go on route when the session starts.
type AcceptTaskCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptTaskCommandHandler creates a handler for task acceptance.
func NewAcceptTaskCommandHandler(uowFactory AssignmentUoWFactory) AcceptTaskCommandHandler {
	return AcceptTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task acceptance command.
func (h AcceptTaskCommandHandler) Handle(ctx context.Context, cmd AcceptTaskCommand) error {
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
	accepted, err := assignmentRepo.GetOpenByShipperAndParcel(ctx, cmd.ShipperID(), cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = accepted.Accept(time.Now()); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, accepted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
