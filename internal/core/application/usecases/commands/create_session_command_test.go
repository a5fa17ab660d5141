package commands_test

import (
	"testing"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand_Success(t *testing.T) {
	sessionID := kernel.NewUUID()
	shipperID := kernel.NewUUID()
	assignmentIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewCreateSessionCommand(sessionID, shipperID, assignmentIDs)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, sessionID, cmd.SessionID())
	require.Equal(t, shipperID, cmd.ShipperID())
	require.Equal(t, assignmentIDs, cmd.AssignmentIDs())
}

func TestNewCreateSessionCommand_EmptyAssignments(t *testing.T) {
	_, err := commands.NewCreateSessionCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateSessionCommand_InvalidShipper(t *testing.T) {
	_, err := commands.NewCreateSessionCommand(
		kernel.NewUUID(), kernel.UUID{}, []kernel.UUID{kernel.NewUUID()})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateSessionCommand_AssignmentIDsReturnsCopy(t *testing.T) {
	assignmentIDs := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewCreateSessionCommand(kernel.NewUUID(), kernel.NewUUID(), assignmentIDs)
	require.NoError(t, err)

	got := cmd.AssignmentIDs()
	got[0] = kernel.NewUUID()

	require.Equal(t, assignmentIDs, cmd.AssignmentIDs())
}

func TestCreateSessionCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CreateSessionCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateSessionCommandIsNotConstructed)
}
