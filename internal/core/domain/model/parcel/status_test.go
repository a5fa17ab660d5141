package parcel_test

import (
	"testing"

	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	t.Run("should follow the delivery happy path", func(t *testing.T) {
		steps := []struct {
			from  parcel.Status
			event parcel.Event
			to    parcel.Status
		}{
			{parcel.InWarehouse, parcel.ScanQR, parcel.OnRoute},
			{parcel.OnRoute, parcel.DeliverySuccessful, parcel.Delivered},
			{parcel.Delivered, parcel.CustomerReceived, parcel.Succeeded},
		}

		for _, step := range steps {
			next, err := parcel.Transition(step.from, step.event)

			require.NoError(t, err)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("should allow every legal transition", func(t *testing.T) {
		legal := []struct {
			from  parcel.Status
			event parcel.Event
			to    parcel.Status
		}{
			{parcel.OnRoute, parcel.Postpone, parcel.InWarehouse},
			{parcel.OnRoute, parcel.Delay, parcel.Delayed},
			{parcel.OnRoute, parcel.CanNotDeliver, parcel.Failed},
			{parcel.OnRoute, parcel.Accident, parcel.Failed},
			{parcel.Delivered, parcel.ConfirmReminder, parcel.Delivered},
			{parcel.Delivered, parcel.ConfirmTimeout, parcel.Succeeded},
			{parcel.Delivered, parcel.CustomerReject, parcel.Failed},
			{parcel.Delayed, parcel.EndSession, parcel.InWarehouse},
			{parcel.Failed, parcel.OpenDispute, parcel.Dispute},
			{parcel.Dispute, parcel.CustomerRetract, parcel.Succeeded},
			{parcel.Dispute, parcel.Misunderstanding, parcel.Succeeded},
			{parcel.Dispute, parcel.FaultConfirmed, parcel.Lost},
		}

		for _, step := range legal {
			next, err := parcel.Transition(step.from, step.event)

			require.NoError(t, err, "%s + %s", step.from, step.event)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("should reject events not legal from the status", func(t *testing.T) {
		illegal := []struct {
			from  parcel.Status
			event parcel.Event
		}{
			{parcel.InWarehouse, parcel.DeliverySuccessful},
			{parcel.InWarehouse, parcel.EndSession},
			{parcel.OnRoute, parcel.ScanQR},
			{parcel.Delivered, parcel.Delay},
			{parcel.Delayed, parcel.ScanQR},
			{parcel.Failed, parcel.CustomerRetract},
			{parcel.Dispute, parcel.OpenDispute},
		}

		for _, step := range illegal {
			_, err := parcel.Transition(step.from, step.event)

			require.Error(t, err, "%s + %s", step.from, step.event)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("should reject any event from terminal statuses", func(t *testing.T) {
		events := []parcel.Event{
			parcel.ScanQR, parcel.DeliverySuccessful, parcel.Postpone, parcel.Delay,
			parcel.CanNotDeliver, parcel.Accident, parcel.ConfirmReminder, parcel.ConfirmTimeout,
			parcel.CustomerReceived, parcel.CustomerReject, parcel.EndSession, parcel.OpenDispute,
			parcel.CustomerRetract, parcel.Misunderstanding, parcel.FaultConfirmed,
		}

		for _, terminal := range []parcel.Status{parcel.Succeeded, parcel.Lost} {
			for _, event := range events {
				_, err := parcel.Transition(terminal, event)

				require.Error(t, err, "%s + %s", terminal, event)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := parcel.Transition(parcel.StatusUnknown, parcel.ScanQR)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, parcel.Succeeded.IsTerminal())
	assert.True(t, parcel.Lost.IsTerminal())

	for _, s := range []parcel.Status{
		parcel.InWarehouse, parcel.OnRoute, parcel.Delivered,
		parcel.Delayed, parcel.Dispute, parcel.Failed,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for _, s := range []parcel.Status{
			parcel.InWarehouse, parcel.OnRoute, parcel.Delivered, parcel.Delayed,
			parcel.Dispute, parcel.Failed, parcel.Succeeded, parcel.Lost,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		require.Error(t, parcel.StatusUnknown.Validate())
		require.Error(t, parcel.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InWarehouse", parcel.InWarehouse.String())
	assert.Equal(t, "Succeeded", parcel.Succeeded.String())
	assert.Equal(t, "Unknown", parcel.Status(99).String())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "ScanQR", parcel.ScanQR.String())
	assert.Equal(t, "FaultConfirmed", parcel.FaultConfirmed.String())
	assert.Equal(t, "Unknown", parcel.Event(99).String())
}
