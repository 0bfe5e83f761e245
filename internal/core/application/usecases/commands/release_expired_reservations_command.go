package commands

import (
	"errors"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"
)

var ErrReleaseExpiredReservationsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredReservationsCommand must be created via NewReleaseExpiredReservationsCommand constructor",
)

// ReleaseExpiredReservationsCommand represents a request to return stale
// reserved vehicles to the sales floor. A reservation counts as stale when
// the vehicle has sat in Reserved status for longer than the given TTL.
type ReleaseExpiredReservationsCommand struct { //nolint:recvcheck //using for validation
	reservationTTL time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseExpiredReservationsCommand creates a command to release expired
// reservations. The TTL must be positive.
func NewReleaseExpiredReservationsCommand(reservationTTL time.Duration) (ReleaseExpiredReservationsCommand, error) {
	command := ReleaseExpiredReservationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setReservationTTL(reservationTTL); err != nil {
		return ReleaseExpiredReservationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseExpiredReservationsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredReservationsCommandIsNotConstructed)
}

// ReservationTTL returns how long a reservation may be held before expiring.
func (c ReleaseExpiredReservationsCommand) ReservationTTL() time.Duration {
	return c.reservationTTL
}

func (c *ReleaseExpiredReservationsCommand) setReservationTTL(reservationTTL time.Duration) error {
	if reservationTTL <= 0 {
		return errs.NewValueIsInvalidError("reservationTTL")
	}

	c.reservationTTL = reservationTTL
	return nil
}
