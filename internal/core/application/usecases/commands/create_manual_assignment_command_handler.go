package commands

import (
	"context"
	"errors"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/core/ports"
	"delivery/internal/pkg/errs"
)

var (
	ErrParcelsAddressMismatch = errors.New("parcels do not share one delivery address")
	ErrParcelNotAvailable     = errors.New("parcel is not available for assignment")
	ErrZoneNotServed          = errors.New("parcel zone is outside the shipper's working zones")
	ErrCapacityExceeded       = errors.New("parcel count exceeds the shipper's capacity")
)

// CreateManualAssignmentCommandHandler creates an operator-initiated
// assignment. The handler validates the bundle against the shared
// delivery-address invariant, parcel availability and the shipper's zone
// and capacity limits before binding the parcels, all within one
// transaction so a failed check leaves no partial bindings behind.
//
// Parcel status is untouched here; parcels leave the warehouse only when
// a session starts.
type CreateManualAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	shippers   ports.ShipperDirectory
}

// NewCreateManualAssignmentCommandHandler creates a handler for manual
// assignment creation.
func NewCreateManualAssignmentCommandHandler(
	uowFactory AssignmentUoWFactory,
	shippers ports.ShipperDirectory,
) CreateManualAssignmentCommandHandler {
	return CreateManualAssignmentCommandHandler{
		uowFactory: uowFactory,
		shippers:   shippers,
	}
}

// Handle processes the manual assignment command and returns the created
// assignment in Pending status.
func (h CreateManualAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateManualAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	shipper, err := h.shippers.Get(ctx, cmd.ShipperID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetByIDs(ctx, cmd.ParcelIDs())
	if err != nil {
		return nil, err
	}

	if err = validateBundle(parcels, shipper, cmd.ZoneID()); err != nil {
		return nil, err
	}

	created, err := assignment.NewAssignment(
		kernel.NewUUID(),
		cmd.ShipperID(),
		parcels[0].DeliveryAddressID(),
		cmd.ParcelIDs(),
		0,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AssignmentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	for _, p := range parcels {
		if err = p.BindAssignment(created.ID()); err != nil {
			return nil, err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// validateBundle enforces the creation invariants over the loaded
// parcels: one delivery address, every parcel in warehouse and unbound,
// zone compatibility when requested, and the shipper's capacity.
func validateBundle(parcels []*parcel.Parcel, shipper routing.Shipper, zoneID *string) error {
	addressID := parcels[0].DeliveryAddressID()
	for _, p := range parcels {
		if !p.DeliveryAddressID().IsEqual(addressID) {
			return errs.NewValueIsInvalidErrorWithCause("parcelIds", ErrParcelsAddressMismatch)
		}
		if p.Status() != parcel.InWarehouse || p.Assignment() != nil {
			return errs.NewValueIsInvalidErrorWithCause("parcelIds", ErrParcelNotAvailable)
		}
		if zoneID != nil && !shipper.CanServeZone(p.ZoneID()) {
			return errs.NewValueIsInvalidErrorWithCause("zoneId", ErrZoneNotServed)
		}
	}

	if len(parcels) > shipper.Capacity {
		return errs.NewValueIsInvalidErrorWithCause("parcelIds", ErrCapacityExceeded)
	}

	return nil
}
