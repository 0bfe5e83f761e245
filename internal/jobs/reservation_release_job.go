package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationReleaseJob manages the scheduled release of expired reservations.
// Runs every minute to return stale reserved vehicles to the sales floor.
type ReservationReleaseJob struct {
	handler        commands.ReleaseExpiredReservationsCommandHandler
	reservationTTL time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewReservationReleaseJob creates a new job for releasing expired reservations.
// Uses ReleaseExpiredReservationsCommandHandler with the configured TTL to
// sweep stale reservations every minute.
func NewReservationReleaseJob(
	handler commands.ReleaseExpiredReservationsCommandHandler,
	reservationTTL time.Duration,
	logger *slog.Logger,
) *ReservationReleaseJob {
	return &ReservationReleaseJob{
		handler:        handler,
		reservationTTL: reservationTTL,
		cron:           cron.New(),
		logger:         logger.With("component", "reservation_release_job"),
	}
}

// Start begins the reservation release job to run every minute.
func (j *ReservationReleaseJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseExpiredReservationsCommand(j.reservationTTL)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation release job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reservation release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation release job started (running every minute)")
	return nil
}

// Stop stops the reservation release job.
func (j *ReservationReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation release job stopped")
}
