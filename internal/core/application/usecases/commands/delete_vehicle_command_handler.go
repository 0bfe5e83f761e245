package commands

import (
	"context"
)

// DeleteVehicleCommandHandler handles vehicle removal.
// The target vehicle is loaded before deletion, so deleting a vehicle that
// does not exist fails fast with an ObjectNotFoundError instead of silently
// succeeding.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
// Requires a VehicleUoWFactory for transactional persistence.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicleRepo.GetByID(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = vehicleRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
