package commands

import (
	"errors"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand represents a request to move a vehicle to a new
// lifecycle status. The target status names the intent (Reserved to reserve,
// Sold to sell, Available to release); whether the transition is legal is
// decided by the aggregate's state machine, not here.
type ChangeVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	targetStatus vehicle.Status

	guard guard.ConstructorGuard
}

// NewChangeVehicleStatusCommand creates a command to change a vehicle's status.
// Validates that the vehicle ID is set and the target status is a known one.
func NewChangeVehicleStatusCommand(
	vehicleID kernel.UUID,
	targetStatus vehicle.Status,
) (ChangeVehicleStatusCommand, error) {
	command := ChangeVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to change.
func (c ChangeVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// TargetStatus returns the requested lifecycle status.
func (c ChangeVehicleStatusCommand) TargetStatus() vehicle.Status {
	return c.targetStatus
}

func (c *ChangeVehicleStatusCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *ChangeVehicleStatusCommand) setTargetStatus(targetStatus vehicle.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
