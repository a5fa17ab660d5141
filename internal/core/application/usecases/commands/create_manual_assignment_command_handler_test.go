package commands_test

import (
	"testing"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateManualAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	shipper := testShipper(t, 5, "z1")
	addressID := kernel.NewUUID()
	p1 := testParcel(t, addressID, "z1", 0)
	p2 := testParcel(t, addressID, "z1", 1)
	parcelIDs := []kernel.UUID{p1.ID(), p2.ID()}

	cmd, err := commands.NewCreateManualAssignmentCommand(shipper.ID, parcelIDs, nil)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		directory.On("Get", ctx, shipper.ID).Return(shipper, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByIDs", ctx, parcelIDs).Return([]*parcel.Parcel{p1, p2}, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		parcelRepo.On("Update", ctx, p1).Return(nil).Once(),
		parcelRepo.On("Update", ctx, p2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, assignment.Pending, created.Status())
	require.Equal(t, addressID, created.DeliveryAddressID())
	require.Equal(t, parcelIDs, created.ParcelIDs())
	require.NotNil(t, p1.Assignment())
	require.True(t, p1.Assignment().IsEqual(created.ID()))
	uow.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
}

func TestCreateManualAssignmentCommandHandler_Handle_MixedAddresses(t *testing.T) {
	ctx := t.Context()

	shipper := testShipper(t, 5)
	p1 := testParcel(t, kernel.NewUUID(), "z1", 0)
	p2 := testParcel(t, kernel.NewUUID(), "z1", 0)
	parcelIDs := []kernel.UUID{p1.ID(), p2.ID()}

	cmd, err := commands.NewCreateManualAssignmentCommand(shipper.ID, parcelIDs, nil)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		directory.On("Get", ctx, shipper.ID).Return(shipper, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByIDs", ctx, parcelIDs).Return([]*parcel.Parcel{p1, p2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Nil(t, p1.Assignment())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateManualAssignmentCommandHandler_Handle_ParcelAlreadyBound(t *testing.T) {
	ctx := t.Context()

	shipper := testShipper(t, 5)
	addressID := kernel.NewUUID()
	bound := testOnRouteParcel(t, addressID, kernel.NewUUID())
	parcelIDs := []kernel.UUID{bound.ID()}

	cmd, err := commands.NewCreateManualAssignmentCommand(shipper.ID, parcelIDs, nil)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		directory.On("Get", ctx, shipper.ID).Return(shipper, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByIDs", ctx, parcelIDs).Return([]*parcel.Parcel{bound}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateManualAssignmentCommandHandler_Handle_ZoneNotServed(t *testing.T) {
	ctx := t.Context()

	shipper := testShipper(t, 5, "z1")
	addressID := kernel.NewUUID()
	outside := testParcel(t, addressID, "z9", 0)
	parcelIDs := []kernel.UUID{outside.ID()}
	zone := "z1"

	cmd, err := commands.NewCreateManualAssignmentCommand(shipper.ID, parcelIDs, &zone)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		directory.On("Get", ctx, shipper.ID).Return(shipper, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByIDs", ctx, parcelIDs).Return([]*parcel.Parcel{outside}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateManualAssignmentCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()

	shipper := testShipper(t, 1)
	addressID := kernel.NewUUID()
	p1 := testParcel(t, addressID, "z1", 0)
	p2 := testParcel(t, addressID, "z1", 0)
	parcelIDs := []kernel.UUID{p1.ID(), p2.ID()}

	cmd, err := commands.NewCreateManualAssignmentCommand(shipper.ID, parcelIDs, nil)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		directory.On("Get", ctx, shipper.ID).Return(shipper, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByIDs", ctx, parcelIDs).Return([]*parcel.Parcel{p1, p2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateManualAssignmentCommandHandler_Handle_ShipperNotFound(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	cmd, err := commands.NewCreateManualAssignmentCommand(
		shipperID, []kernel.UUID{kernel.NewUUID()}, nil)
	require.NoError(t, err)

	directory := new(MockShipperDirectory)
	directory.On("Get", ctx, shipperID).
		Return(routing.Shipper{}, errs.NewObjectNotFoundError("shipperId", shipperID.String())).
		Once()

	factory := new(MockAssignmentUoWFactory)
	handler := commands.NewCreateManualAssignmentCommandHandler(factory, directory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}
