package bootstrap

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/infra/scheduler"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the retention cleanup on CLEANUP_SCHEDULE; an empty schedule disables it.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, shop shared.ShopSettings, maintenance commands.MaintenanceCommands) error {
	if cfg.Scheduler.CleanupSchedule == "" {
		return nil
	}

	s := scheduler.New(maintenance, shop.Location)
	if _, err := s.RegisterCleanup(cfg.Scheduler.CleanupSchedule); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			slog.Info("cleanup scheduler started", "schedule", cfg.Scheduler.CleanupSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
