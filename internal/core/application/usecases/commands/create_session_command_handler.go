package commands

import (
	"context"
	"errors"
	"time"

	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/pkg/errs"
)

var (
	ErrShipperHasActiveSession = errs.NewInvalidStateError("session", "Create", "Active")
	ErrAssignmentNotOwned      = errs.NewValueIsInvalidErrorWithCause(
		"assignmentIds", errors.New("assignment belongs to a different shipper"))
)

// CreateSessionCommandHandler opens a shipper's working session. The
// session insert, every assignment start and every parcel scan commit as
// one transaction; the one-open-session-per-shipper rule is backed by a
// partial unique index on sessions, so a concurrent duplicate insert
// surfaces as a concurrency conflict rather than a second open session.
type CreateSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateSessionCommandHandler creates a handler for session creation.
func NewCreateSessionCommandHandler(uowFactory UoWFactory) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session creation command and returns the session
// in Created status with its assignments started and parcels on route.
func (h CreateSessionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSessionCommand,
) (*session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	_, err := sessionRepo.GetActiveByShipper(ctx, cmd.ShipperID())
	if err == nil {
		return nil, ErrShipperHasActiveSession
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	assignmentRepo := uow.AssignmentRepository()
	assignments, err := assignmentRepo.GetByIDs(ctx, cmd.AssignmentIDs())
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if !a.ShipperID().IsEqual(cmd.ShipperID()) {
			return nil, ErrAssignmentNotOwned
		}
	}

	created, err := session.NewSession(cmd.SessionID(), cmd.ShipperID(), time.Now(), len(assignments))
	if err != nil {
		return nil, err
	}
	if err = sessionRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	parcelRepo := uow.ParcelRepository()
	for _, a := range assignments {
		if err = a.Start(created.ID()); err != nil {
			return nil, err
		}
		if err = assignmentRepo.Update(ctx, a); err != nil {
			return nil, err
		}

		parcels, perr := parcelRepo.GetByIDs(ctx, a.ParcelIDs())
		if perr != nil {
			return nil, perr
		}
		for _, p := range parcels {
			if err = p.Apply(parcel.ScanQR); err != nil {
				return nil, err
			}
			if err = parcelRepo.Update(ctx, p); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
