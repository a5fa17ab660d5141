package commands_test

import (
	"errors"
	"testing"
	"time"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostponeTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	sessionID := kernel.NewUUID()
	owning := testInProgressSession(t, sessionID, shipperID, session.Counters{TotalTasks: 1})

	postponing := testInProgressAssignment(t, shipperID, sessionID, []kernel.UUID{kernel.NewUUID()})
	rescheduled := testOnRouteParcel(t, postponing.DeliveryAddressID(), postponing.ID())
	postponedTo := testShiftStart.Add(26 * time.Hour)

	cmd, err := commands.NewPostponeTaskCommand(
		shipperID, rescheduled.ID(), postponedTo, "customer not home")
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("GetOpenByShipperAndParcel", ctx, shipperID, rescheduled.ID()).
		Return(postponing, nil).Once()
	assignmentRepo.On("Update", ctx, postponing).Return(nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByIDs", ctx, postponing.ParcelIDs()).
		Return([]*parcel.Parcel{rescheduled}, nil).Once()
	parcelRepo.On("Update", ctx, rescheduled).Return(nil).Once()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Get", ctx, sessionID).Return(owning, nil).Once()
	sessionRepo.On("Update", ctx, owning).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishParcelPostponed", ctx, mock.AnythingOfType("ports.ParcelPostponedEvent")).
		Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPostponeTaskCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, assignment.Failed, postponing.Status())
	require.Contains(t, postponing.FailReason(), "customer not home")
	require.Equal(t, parcel.InWarehouse, rescheduled.Status())
	require.Nil(t, rescheduled.Assignment())
	require.Equal(t, 1, owning.Counters().DelayedTasks)

	event := publisher.Calls[0].Arguments[1].(ports.ParcelPostponedEvent)
	require.Equal(t, postponedTo, event.PostponedTo)
	require.Equal(t, "customer not home", event.Reason)
	require.Equal(t, rescheduled.ID().String(), event.ParcelID)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostponeTaskCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	sessionID := kernel.NewUUID()
	owning := testInProgressSession(t, sessionID, shipperID, session.Counters{TotalTasks: 1})

	postponing := testInProgressAssignment(t, shipperID, sessionID, []kernel.UUID{kernel.NewUUID()})
	rescheduled := testOnRouteParcel(t, postponing.DeliveryAddressID(), postponing.ID())

	cmd, err := commands.NewPostponeTaskCommand(
		shipperID, rescheduled.ID(), testShiftStart.Add(26*time.Hour), "address closed")
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("GetOpenByShipperAndParcel", ctx, shipperID, rescheduled.ID()).
		Return(postponing, nil).Once()
	assignmentRepo.On("Update", ctx, postponing).Return(nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByIDs", ctx, postponing.ParcelIDs()).
		Return([]*parcel.Parcel{rescheduled}, nil).Once()
	parcelRepo.On("Update", ctx, rescheduled).Return(nil).Once()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Get", ctx, sessionID).Return(owning, nil).Once()
	sessionRepo.On("Update", ctx, owning).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishParcelPostponed", ctx, mock.AnythingOfType("ports.ParcelPostponedEvent")).
		Return(errors.New("broker unreachable")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPostponeTaskCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, parcel.InWarehouse, rescheduled.Status())
}
