package repository

import (
	"context"
	"time"

	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type DeliveryWriteQueries interface {
	RecordWebhookDelivery(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWebhookDeliveryParams) (int64, error)
	PurgeWebhookDeliveries(ctx context.Context, db sqlc.DBTX, receivedAt pgtype.Timestamptz) (int64, error)
}

type DeliveryRepository struct {
	queries DeliveryWriteQueries
}

func NewDeliveryRepository(queries DeliveryWriteQueries) *DeliveryRepository {
	return &DeliveryRepository{
		queries: queries,
	}
}

func (r *DeliveryRepository) Record(ctx context.Context, tx sqlc.DBTX, deliveryID, eventType string, at time.Time) (bool, error) {
	n, err := r.queries.RecordWebhookDelivery(ctx, tx, sqlc.RecordWebhookDeliveryParams{
		DeliveryID: deliveryID,
		EventType:  eventType,
		ReceivedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook delivery", err)
	}
	return n == 1, nil
}

func (r *DeliveryRepository) Purge(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error) {
	n, err := r.queries.PurgeWebhookDeliveries(ctx, tx, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge webhook deliveries", err)
	}
	return n, nil
}
