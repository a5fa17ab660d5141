package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrCreateManualAssignmentCommandIsNotConstructed = errors.New(
	"CreateManualAssignmentCommand must be created via NewCreateManualAssignmentCommand constructor",
)

// CreateManualAssignmentCommand represents an operator's request to hand
// a bundle of parcels to a specific shipper. All parcels must share one
// delivery address; the optional zone id restricts the bundle to the
// shipper's configured working zones.
type CreateManualAssignmentCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	parcelIDs []kernel.UUID
	zoneID    *string

	guard guard.ConstructorGuard
}

// NewCreateManualAssignmentCommand creates a validated manual assignment
// command. The parcel list must be non-empty.
func NewCreateManualAssignmentCommand(
	shipperID kernel.UUID,
	parcelIDs []kernel.UUID,
	zoneID *string,
) (CreateManualAssignmentCommand, error) {
	cmd := CreateManualAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipperID(shipperID),
		cmd.setParcelIDs(parcelIDs),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateManualAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManualAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualAssignmentCommandIsNotConstructed)
}

// ShipperID returns the shipper receiving the work.
func (c CreateManualAssignmentCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// ParcelIDs returns the parcels to bundle.
func (c CreateManualAssignmentCommand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcelIDs))
	copy(ids, c.parcelIDs)
	return ids
}

// ZoneID returns the optional zone restriction.
func (c CreateManualAssignmentCommand) ZoneID() *string {
	return c.zoneID
}

func (c *CreateManualAssignmentCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	c.shipperID = shipperID
	return nil
}

func (c *CreateManualAssignmentCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	if len(parcelIDs) == 0 {
		return errs.NewValueIsRequiredError("parcelIds")
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("parcelIds", err)
		}
	}
	c.parcelIDs = make([]kernel.UUID, len(parcelIDs))
	copy(c.parcelIDs, parcelIDs)
	return nil
}

func (c *CreateManualAssignmentCommand) setZoneID(zoneID *string) error {
	if zoneID != nil && *zoneID == "" {
		return errs.NewValueIsInvalidError("zoneId")
	}
	c.zoneID = zoneID
	return nil
}
