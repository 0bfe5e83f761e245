package commands

import (
	"context"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
)

// ReleaseExpiredReservationsCommandHandler returns stale reserved vehicles to
// Available status. Staleness is measured against the aggregate's last
// modification time, which every reservation refreshes.
type ReleaseExpiredReservationsCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewReleaseExpiredReservationsCommandHandler creates a handler for the
// reservation expiry sweep. Requires a VehicleUoWFactory for transactional
// persistence.
func NewReleaseExpiredReservationsCommandHandler(
	uowFactory VehicleUoWFactory,
) ReleaseExpiredReservationsCommandHandler {
	return ReleaseExpiredReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep.
// All expired reservations release in one transaction; an empty sweep is a
// successful no-op.
func (h *ReleaseExpiredReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseExpiredReservationsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.ReservationTTL())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	expired, err := vehicleRepo.FindBy(ctx, func(v *vehicle.Vehicle) bool {
		return v.Status() == vehicle.StatusReserved && v.UpdatedAt().Before(cutoff)
	})
	if err != nil {
		return err
	}

	for _, aggregate := range expired {
		if err = aggregate.MakeAvailable(); err != nil {
			return err
		}

		if err = vehicleRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
