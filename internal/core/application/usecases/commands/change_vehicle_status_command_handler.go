package commands

import (
	"context"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
)

// ChangeVehicleStatusCommandHandler handles vehicle lifecycle transitions.
// Loads the aggregate, dispatches to the guarded transition matching the
// target status, and persists the result. Illegal transitions surface as
// InvalidStateTransitionError and leave the stored vehicle unchanged.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewChangeVehicleStatusCommandHandler creates a handler for status transitions.
// Requires a VehicleUoWFactory for transactional persistence.
func NewChangeVehicleStatusCommandHandler(uowFactory VehicleUoWFactory) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// The read and write happen in one transaction, so concurrent transitions on
// the same vehicle serialize at the database.
func (h *ChangeVehicleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStatusCommand) error {
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

	if err = applyTransition(aggregate, cmd.TargetStatus()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyTransition maps the target status to the matching guarded transition.
func applyTransition(aggregate *vehicle.Vehicle, targetStatus vehicle.Status) error {
	switch targetStatus {
	case vehicle.StatusReserved:
		return aggregate.Reserve()
	case vehicle.StatusSold:
		return aggregate.Sell()
	case vehicle.StatusAvailable:
		return aggregate.MakeAvailable()
	default:
		return errs.NewValueIsInvalidError("targetStatus")
	}
}
