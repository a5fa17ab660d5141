package commands_test

import (
	"testing"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCompleteTaskCommand_Success(t *testing.T) {
	shipperID := kernel.NewUUID()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCompleteTaskCommand(shipperID, parcelID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, shipperID, cmd.ShipperID())
	require.Equal(t, parcelID, cmd.ParcelID())
}

func TestNewCompleteTaskCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCompleteTaskCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCompleteTaskCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompleteTaskCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CompleteTaskCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteTaskCommandIsNotConstructed)
}
