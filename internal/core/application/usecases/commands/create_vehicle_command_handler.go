package commands

import (
	"context"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle
// registration. Parses the textual engine and transmission types, builds the
// aggregate through the domain factory, and persists it transactionally.
// A VIN already present in the inventory surfaces as a ConstraintViolationError
// from the repository.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	vehicleID := kernel.NewUUID()
//	cmd, _ := NewCreateVehicleCommand(vehicleID, "1HGBH41JXMN109186",
//	    "Honda", "Accord", "Touring", "Sedan", 2021, "Black",
//	    "Gasoline", "Automatic", 12000, decimal.NewFromInt(25000), "USD")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// The new vehicle enters the inventory in Available status.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	engineType, err := vehicle.EngineTypeFromString(cmd.EngineType())
	if err != nil {
		return err
	}

	transmissionType, err := vehicle.TransmissionTypeFromString(cmd.TransmissionType())
	if err != nil {
		return err
	}

	newVehicle, err := vehicle.RegisterNewVehicle(
		cmd.VehicleID(),
		cmd.Vin(),
		cmd.Manufacturer(),
		cmd.Model(),
		cmd.Package(),
		cmd.BodyType(),
		cmd.Year(),
		cmd.Color(),
		engineType,
		transmissionType,
		cmd.InitialMileage(),
		cmd.BasePriceAmount(),
		cmd.BasePriceCurrency(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
