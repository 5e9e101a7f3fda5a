package repository

import (
	"context"
	"time"

	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventWriteQueries interface {
	InsertAppointmentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAppointmentEventParams) (int64, error)
	PurgePublishedEvents(ctx context.Context, db sqlc.DBTX, publishedAt pgtype.Timestamptz) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{
		queries: queries,
	}
}

func (r *EventRepository) Append(ctx context.Context, tx sqlc.DBTX, e shared.OutboxEvent) error {
	_, err := r.queries.InsertAppointmentEvent(ctx, tx, sqlc.InsertAppointmentEventParams{
		AppointmentID: e.AppointmentID,
		EventType:     e.Type,
		Payload:       e.Payload,
		CreatedAt:     pgconv.TimeToPgtype(e.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append appointment event", err)
	}
	return nil
}

func (r *EventRepository) PurgePublished(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error) {
	n, err := r.queries.PurgePublishedEvents(ctx, tx, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge published events", err)
	}
	return n, nil
}
