package eventbus

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("barbershop-booking/infra/eventbus")

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type OutboxQueries interface {
	FetchUnpublishedEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.AppointmentEvents, error)
	MarkEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventsPublishedParams) error
}

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// Relay drains appointment_events to Kafka. Rows are claimed with SKIP LOCKED so
// several instances can run side by side; delivery is at-least-once.
type Relay struct {
	uow       shared.UnitOfWork
	queries   OutboxQueries
	writer    MessageWriter
	clock     clock.Clock
	pollEvery time.Duration
	batchSize int
}

func NewRelay(uow shared.UnitOfWork, queries OutboxQueries, writer MessageWriter, clk clock.Clock, cfg RelayConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Relay{
		uow:       uow,
		queries:   queries,
		writer:    writer,
		clock:     clk,
		pollEvery: cfg.PollInterval,
		batchSize: cfg.BatchSize,
	}
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.PublishBatch(ctx)
			if err != nil {
				slog.Error("outbox publish failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("outbox batch published", "count", n)
			}
		}
	}
}

// PublishBatch sends one batch and marks it published in the same transaction.
func (r *Relay) PublishBatch(ctx context.Context) (published int, err error) {
	ctx, span := tracer.Start(ctx, "Relay.PublishBatch")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("outbox.published", published))
		span.End()
	}()

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0

		rows, err := r.queries.FetchUnpublishedEvents(ctx, tx.DB(), int32(r.batchSize)) // #nosec G115 -- batch size is small
		if err != nil {
			return infra.WrapRepoErr("failed to fetch unpublished events", err)
		}
		if len(rows) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(rows))
		ids := make([]int64, 0, len(rows))
		for _, row := range rows {
			msgs = append(msgs, toMessage(ctx, row))
			ids = append(ids, row.ID)
		}
		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return errs.Wrap(err, "write outbox messages")
		}

		if err := r.queries.MarkEventsPublished(ctx, tx.DB(), sqlc.MarkEventsPublishedParams{
			Column1:     ids,
			PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
		}); err != nil {
			return infra.WrapRepoErr("failed to mark events published", err)
		}
		published = len(rows)
		return nil
	})
	return published, err
}

func toMessage(ctx context.Context, row sqlc.AppointmentEvents) kafka.Message {
	msg := kafka.Message{
		Topic: row.EventType,
		Key:   []byte(row.AppointmentID.String()),
		Value: row.Payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(strconv.FormatInt(row.ID, 10))},
			{Key: HeaderEventType, Value: []byte(row.EventType)},
		},
		Time: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	msg.Headers = InjectTraceHeaders(ctx, msg.Headers)
	return msg
}
