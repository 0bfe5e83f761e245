package commands_test

import (
	"errors"
	"testing"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/commands"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredVehicle(t)
	cmd, err := commands.NewDeleteVehicleCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByID", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredVehicle(t)
	cmd, err := commands.NewDeleteVehicleCommand(aggregate.ID())
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("vehicleID", aggregate.ID())
	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByID", mock.Anything, aggregate.ID()).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteVehicleCommand{} // not constructed properly
	factory := new(MockVehicleUoWFactory)
	h := commands.NewDeleteVehicleCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestDeleteVehicleCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredVehicle(t)
	cmd, err := commands.NewDeleteVehicleCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByID", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
