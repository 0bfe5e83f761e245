package commands_test

import (
	"testing"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/commands"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeVehicleStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewChangeVehicleStatusCommand(id, vehicle.StatusReserved)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.VehicleID())
	assert.Equal(t, vehicle.StatusReserved, cmd.TargetStatus())
}

func TestNewChangeVehicleStatusCommand_InvalidVehicleID(t *testing.T) {
	_, err := commands.NewChangeVehicleStatusCommand(kernel.UUID{}, vehicle.StatusReserved)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeVehicleStatusCommand_InvalidTargetStatus(t *testing.T) {
	_, err := commands.NewChangeVehicleStatusCommand(kernel.NewUUID(), vehicle.StatusUnknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeVehicleStatusCommand_NotConstructed(t *testing.T) {
	cmd := commands.ChangeVehicleStatusCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeVehicleStatusCommandIsNotConstructed)
}
