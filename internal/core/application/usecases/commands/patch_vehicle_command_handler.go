package commands

import (
	"context"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
)

// PatchVehicleCommandHandler handles partial vehicle updates.
// Translates the textual patch fields into domain values, applies them
// atomically through the aggregate, and persists the result. Any invalid
// field rejects the whole patch.
type PatchVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewPatchVehicleCommandHandler creates a handler for partial vehicle updates.
// Requires a VehicleUoWFactory for transactional persistence.
func NewPatchVehicleCommandHandler(uowFactory VehicleUoWFactory) PatchVehicleCommandHandler {
	return PatchVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the patch command.
// An empty patch short-circuits in the domain and still commits, leaving the
// stored row untouched.
func (h *PatchVehicleCommandHandler) Handle(ctx context.Context, cmd PatchVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	details, err := toDetails(cmd.Fields())
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

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicleRepo.GetByID(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(details); err != nil {
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

// toDetails converts the boundary patch into domain Details, parsing enums
// and assembling the Money value.
func toDetails(fields PatchVehicleFields) (vehicle.Details, error) {
	details := vehicle.Details{
		Manufacturer: fields.Manufacturer,
		Model:        fields.Model,
		Package:      fields.Package,
		BodyType:     fields.BodyType,
		Color:        fields.Color,
		Year:         fields.Year,
		Mileage:      fields.Mileage,
	}

	if fields.EngineType != nil {
		engineType, err := vehicle.EngineTypeFromString(*fields.EngineType)
		if err != nil {
			return vehicle.Details{}, err
		}
		details.EngineType = &engineType
	}

	if fields.TransmissionType != nil {
		transmissionType, err := vehicle.TransmissionTypeFromString(*fields.TransmissionType)
		if err != nil {
			return vehicle.Details{}, err
		}
		details.TransmissionType = &transmissionType
	}

	if fields.BasePriceAmount != nil && fields.BasePriceCurrency != nil {
		price, err := kernel.NewMoney(*fields.BasePriceAmount, *fields.BasePriceCurrency)
		if err != nil {
			return vehicle.Details{}, err
		}
		details.BasePrice = &price
	}

	return details, nil
}
