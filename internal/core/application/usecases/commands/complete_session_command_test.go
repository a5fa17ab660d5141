package commands_test

import (
	"testing"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCompleteSessionCommand_Success(t *testing.T) {
	sessionID := kernel.NewUUID()

	cmd, err := commands.NewCompleteSessionCommand(sessionID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, sessionID, cmd.SessionID())
}

func TestNewCompleteSessionCommand_InvalidSession(t *testing.T) {
	_, err := commands.NewCompleteSessionCommand(kernel.UUID{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompleteSessionCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CompleteSessionCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteSessionCommandIsNotConstructed)
}
