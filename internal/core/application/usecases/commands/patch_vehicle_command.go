package commands

import (
	"errors"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPatchVehicleCommandIsNotConstructed = errors.New(
	"PatchVehicleCommand must be created via NewPatchVehicleCommand constructor",
)

// PatchVehicleFields carries an optional value for every patchable vehicle
// attribute at the application boundary. A nil field means "leave unchanged".
// Engine and transmission types arrive in their textual form; the price
// amount and currency must be present together or not at all.
type PatchVehicleFields struct {
	Manufacturer     *string
	Model            *string
	Package          *string
	BodyType         *string
	Color            *string
	Year             *int
	Mileage          *int
	EngineType       *string
	TransmissionType *string

	BasePriceAmount   *decimal.Decimal
	BasePriceCurrency *string
}

// PatchVehicleCommand represents a request to partially update a vehicle's
// descriptive attributes. Field-level validation happens in the domain when
// the patch is applied; an empty patch is legal and leaves the vehicle
// untouched.
type PatchVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	fields    PatchVehicleFields

	guard guard.ConstructorGuard
}

// NewPatchVehicleCommand creates a command to partially update a vehicle.
// Validates that the vehicle ID is set and that the price fields come as a
// pair.
func NewPatchVehicleCommand(vehicleID kernel.UUID, fields PatchVehicleFields) (PatchVehicleCommand, error) {
	command := PatchVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setFields(fields),
	); err != nil {
		return PatchVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchVehicleCommand) Validate() error {
	return c.guard.Validate(ErrPatchVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to patch.
func (c PatchVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Fields returns the optional attribute values carried by the patch.
func (c PatchVehicleCommand) Fields() PatchVehicleFields {
	return c.fields
}

func (c *PatchVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *PatchVehicleCommand) setFields(fields PatchVehicleFields) error {
	if (fields.BasePriceAmount == nil) != (fields.BasePriceCurrency == nil) {
		return errs.NewValueIsInvalidErrorWithCause("basePrice",
			errors.New("amount and currency must be provided together"))
	}

	c.fields = fields
	return nil
}
