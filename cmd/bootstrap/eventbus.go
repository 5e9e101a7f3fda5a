package bootstrap

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/infra/eventbus"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Invoke(StartRelay),
)

// StartRelay runs the outbox relay for the app's lifetime when KAFKA_BROKERS is set.
// Events keep accumulating in the outbox otherwise.
func StartRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, q *sqlc.Queries, clk clock.Clock) {
	if !cfg.Kafka.Enabled() {
		slog.Info("kafka relay disabled")
		return
	}

	writer := eventbus.NewKafkaWriter(cfg.Kafka.Brokers)
	relay := eventbus.NewRelay(uow, q, writer, clk, eventbus.RelayConfig{
		PollInterval: cfg.Kafka.PollInterval,
		BatchSize:    cfg.Kafka.BatchSize,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			slog.Info("kafka relay started", "brokers", cfg.Kafka.Brokers)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return writer.Close()
		},
	})
}
