package commands_test

import (
	"testing"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateAutoAssignmentCommand_Defaults(t *testing.T) {
	cmd, err := commands.NewCreateAutoAssignmentCommand(nil, nil, "", "")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Empty(t, cmd.ShipperIDs())
	require.Empty(t, cmd.ParcelIDs())
	require.Equal(t, routing.VehicleMotorbike, cmd.Vehicle())
	require.Equal(t, routing.ModeFastest, cmd.Mode())
}

func TestNewCreateAutoAssignmentCommand_ExplicitSets(t *testing.T) {
	shipperIDs := []kernel.UUID{kernel.NewUUID()}
	parcelIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewCreateAutoAssignmentCommand(
		shipperIDs, parcelIDs, routing.VehicleCar, routing.ModeShortest)

	require.NoError(t, err)
	require.Equal(t, shipperIDs, cmd.ShipperIDs())
	require.Equal(t, parcelIDs, cmd.ParcelIDs())
	require.Equal(t, routing.VehicleCar, cmd.Vehicle())
	require.Equal(t, routing.ModeShortest, cmd.Mode())
}

func TestNewCreateAutoAssignmentCommand_InvalidVehicle(t *testing.T) {
	_, err := commands.NewCreateAutoAssignmentCommand(nil, nil, "bicycle", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateAutoAssignmentCommand_InvalidMode(t *testing.T) {
	_, err := commands.NewCreateAutoAssignmentCommand(nil, nil, "", "scenic")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAutoAssignmentCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CreateAutoAssignmentCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateAutoAssignmentCommandIsNotConstructed)
}
