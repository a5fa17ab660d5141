package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

var ErrCreateAutoAssignmentCommandIsNotConstructed = errors.New(
	"CreateAutoAssignmentCommand must be created via NewCreateAutoAssignmentCommand constructor",
)

// CreateAutoAssignmentCommand requests a solver run over a shipper and
// parcel set. Both sets are optional: an empty shipper list means all
// currently available shippers, an empty parcel list means all
// unassigned parcels. Vehicle and mode default to motorbike/fastest.
type CreateAutoAssignmentCommand struct { //nolint:recvcheck //using for validation
	shipperIDs []kernel.UUID
	parcelIDs  []kernel.UUID
	vehicle    routing.VehicleProfile
	mode       routing.SolverMode

	guard guard.ConstructorGuard
}

// NewCreateAutoAssignmentCommand creates a validated auto assignment
// command. Pass empty vehicle or mode to get the defaults.
func NewCreateAutoAssignmentCommand(
	shipperIDs []kernel.UUID,
	parcelIDs []kernel.UUID,
	vehicle routing.VehicleProfile,
	mode routing.SolverMode,
) (CreateAutoAssignmentCommand, error) {
	cmd := CreateAutoAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipperIDs(shipperIDs),
		cmd.setParcelIDs(parcelIDs),
		cmd.setVehicle(vehicle),
		cmd.setMode(mode),
	); err != nil {
		return CreateAutoAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAutoAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAutoAssignmentCommandIsNotConstructed)
}

// ShipperIDs returns the explicit shipper set, empty for all available.
func (c CreateAutoAssignmentCommand) ShipperIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.shipperIDs))
	copy(ids, c.shipperIDs)
	return ids
}

// ParcelIDs returns the explicit parcel set, empty for all unassigned.
func (c CreateAutoAssignmentCommand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcelIDs))
	copy(ids, c.parcelIDs)
	return ids
}

// Vehicle returns the travel profile for the route service.
func (c CreateAutoAssignmentCommand) Vehicle() routing.VehicleProfile {
	return c.vehicle
}

// Mode returns the optimization target for the route service.
func (c CreateAutoAssignmentCommand) Mode() routing.SolverMode {
	return c.mode
}

func (c *CreateAutoAssignmentCommand) setShipperIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("shipperIds", err)
		}
	}
	c.shipperIDs = make([]kernel.UUID, len(ids))
	copy(c.shipperIDs, ids)
	return nil
}

func (c *CreateAutoAssignmentCommand) setParcelIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("parcelIds", err)
		}
	}
	c.parcelIDs = make([]kernel.UUID, len(ids))
	copy(c.parcelIDs, ids)
	return nil
}

func (c *CreateAutoAssignmentCommand) setVehicle(vehicle routing.VehicleProfile) error {
	switch vehicle {
	case "":
		c.vehicle = routing.VehicleMotorbike
	case routing.VehicleMotorbike, routing.VehicleCar:
		c.vehicle = vehicle
	default:
		return errs.NewValueIsInvalidError("vehicle")
	}
	return nil
}

func (c *CreateAutoAssignmentCommand) setMode(mode routing.SolverMode) error {
	switch mode {
	case "":
		c.mode = routing.ModeFastest
	case routing.ModeFastest, routing.ModeShortest:
		c.mode = mode
	default:
		return errs.NewValueIsInvalidError("mode")
	}
	return nil
}
