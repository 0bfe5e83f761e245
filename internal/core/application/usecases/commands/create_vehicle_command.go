package commands

import (
	"errors"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle in the
// inventory. Carries the raw registration data; the domain layer applies the
// full invariant set (VIN length, year bounds, price validity) on top of the
// basic presence checks done here.
//
// Example:
//
//	vehicleID := kernel.NewUUID()
//	cmd, err := NewCreateVehicleCommand(vehicleID, "1HGBH41JXMN109186",
//	    "Honda", "Accord", "Touring", "Sedan", 2021, "Black",
//	    "Gasoline", "Automatic", 12000, decimal.NewFromInt(25000), "USD")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	vin          string
	manufacturer string
	model        string
	pkg          string
	bodyType     string

	year             int
	color            string
	engineType       string
	transmissionType string
	initialMileage   int

	basePriceAmount   decimal.Decimal
	basePriceCurrency string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Engine and transmission types arrive in their textual form and are parsed
// by the handler; this constructor only checks presence.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	vin string,
	manufacturer string,
	model string,
	pkg string,
	bodyType string,
	year int,
	color string,
	engineType string,
	transmissionType string,
	initialMileage int,
	basePriceAmount decimal.Decimal,
	basePriceCurrency string,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		guard.AgainstBlankString("vin", vin),
		guard.AgainstBlankString("manufacturer", manufacturer),
		guard.AgainstBlankString("model", model),
		guard.AgainstBlankString("package", pkg),
		guard.AgainstBlankString("bodyType", bodyType),
		guard.AgainstBlankString("color", color),
		guard.AgainstBlankString("engineType", engineType),
		guard.AgainstBlankString("transmissionType", transmissionType),
		guard.AgainstBlankString("basePriceCurrency", basePriceCurrency),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	command.vin = vin
	command.manufacturer = manufacturer
	command.model = model
	command.pkg = pkg
	command.bodyType = bodyType
	command.year = year
	command.color = color
	command.engineType = engineType
	command.transmissionType = transmissionType
	command.initialMileage = initialMileage
	command.basePriceAmount = basePriceAmount
	command.basePriceCurrency = basePriceCurrency

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier assigned to the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Vin returns the Vehicle Identification Number as submitted.
func (c CreateVehicleCommand) Vin() string {
	return c.vin
}

// Manufacturer returns the manufacturer name.
func (c CreateVehicleCommand) Manufacturer() string {
	return c.manufacturer
}

// Model returns the model name.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Package returns the trim/equipment package designation.
func (c CreateVehicleCommand) Package() string {
	return c.pkg
}

// BodyType returns the body style.
func (c CreateVehicleCommand) BodyType() string {
	return c.bodyType
}

// Year returns the model year.
func (c CreateVehicleCommand) Year() int {
	return c.year
}

// Color returns the exterior color.
func (c CreateVehicleCommand) Color() string {
	return c.color
}

// EngineType returns the engine type in textual form.
func (c CreateVehicleCommand) EngineType() string {
	return c.engineType
}

// TransmissionType returns the transmission type in textual form.
func (c CreateVehicleCommand) TransmissionType() string {
	return c.transmissionType
}

// InitialMileage returns the mileage at registration time.
func (c CreateVehicleCommand) InitialMileage() int {
	return c.initialMileage
}

// BasePriceAmount returns the price amount.
func (c CreateVehicleCommand) BasePriceAmount() decimal.Decimal {
	return c.basePriceAmount
}

// BasePriceCurrency returns the price currency code.
func (c CreateVehicleCommand) BasePriceCurrency() string {
	return c.basePriceCurrency
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
