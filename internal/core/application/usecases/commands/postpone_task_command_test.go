package commands_test

import (
	"testing"
	"time"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewPostponeTaskCommand_Success(t *testing.T) {
	shipperID := kernel.NewUUID()
	parcelID := kernel.NewUUID()
	postponedTo := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewPostponeTaskCommand(shipperID, parcelID, postponedTo, "receiver requested")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, shipperID, cmd.ShipperID())
	require.Equal(t, parcelID, cmd.ParcelID())
	require.Equal(t, postponedTo, cmd.PostponedTo())
	require.Equal(t, "receiver requested", cmd.Reason())
}

func TestNewPostponeTaskCommand_InvalidIDs(t *testing.T) {
	postponedTo := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	_, err := commands.NewPostponeTaskCommand(
		kernel.UUID{}, kernel.NewUUID(), postponedTo, "receiver requested")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewPostponeTaskCommand(
		kernel.NewUUID(), kernel.UUID{}, postponedTo, "receiver requested")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPostponeTaskCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewPostponeTaskCommand(
		kernel.NewUUID(), kernel.NewUUID(), time.Time{}, "receiver requested")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPostponeTaskCommand_EmptyReason(t *testing.T) {
	postponedTo := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	_, err := commands.NewPostponeTaskCommand(
		kernel.NewUUID(), kernel.NewUUID(), postponedTo, "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPostponeTaskCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.PostponeTaskCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrPostponeTaskCommandIsNotConstructed)
}
