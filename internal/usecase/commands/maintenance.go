package commands

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"
)

type CleanupResult struct {
	Before           time.Time
	EventsPurged     int64
	DeliveriesPurged int64
}

type MaintenanceCommands interface {
	Cleanup(ctx context.Context) (*CleanupResult, error)
}

type maintenanceUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	retention time.Duration
}

// NewMaintenanceCommands purges bookkeeping rows older than retention.
// Appointments are history and never purged.
func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock, retention time.Duration) MaintenanceCommands {
	return &maintenanceUseCaseImpl{uow: uow, clock: clk, retention: retention}
}

func (uc *maintenanceUseCaseImpl) Cleanup(ctx context.Context) (*CleanupResult, error) {
	result := &CleanupResult{Before: uc.clock.Now().Add(-uc.retention)}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Events().PurgePublished(ctx, tx.DB(), result.Before)
		if derr != nil {
			return derr
		}
		result.EventsPurged = n

		n, derr = tx.Deliveries().Purge(ctx, tx.DB(), result.Before)
		if derr != nil {
			return derr
		}
		result.DeliveriesPurged = n
		return nil
	})
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	slog.InfoContext(ctx, "cleanup finished",
		"before", result.Before,
		"events_purged", result.EventsPurged,
		"deliveries_purged", result.DeliveriesPurged)
	return result, nil
}
