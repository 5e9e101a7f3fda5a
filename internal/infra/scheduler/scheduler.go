package scheduler

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"

	cron "github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron        *cron.Cron
	maintenance commands.MaintenanceCommands
	timeout     time.Duration
}

func New(maintenance commands.MaintenanceCommands, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		maintenance: maintenance,
		timeout:     5 * time.Minute,
	}
}

// RegisterCleanup schedules the retention job; spec is a standard five-field cron expression.
func (s *Scheduler) RegisterCleanup(spec string) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, s.RunCleanup)
	if err != nil {
		return 0, errs.Wrap(err, "invalid cleanup schedule")
	}
	return id, nil
}

func (s *Scheduler) RunCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res, err := s.maintenance.Cleanup(ctx)
	if err != nil {
		slog.Error("scheduled cleanup failed", "error", err)
		return
	}
	slog.Info("scheduled cleanup finished",
		"before", res.Before,
		"events_purged", res.EventsPurged,
		"deliveries_purged", res.DeliveriesPurged)
}

func (s *Scheduler) Entries() []cron.Entry { return s.cron.Entries() }

func (s *Scheduler) Start() { s.cron.Start() }

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
