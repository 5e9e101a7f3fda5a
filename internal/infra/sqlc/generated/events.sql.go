// Mirrors sqlc v1.29.0 output for queries/events.sql.
// Run `sqlc generate` in internal/infra/sqlc after changing the queries.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const fetchUnpublishedEvents = `-- name: FetchUnpublishedEvents :many
SELECT id, appointment_id, event_type, payload, created_at, published_at
FROM appointment_events
WHERE published_at IS NULL
ORDER BY id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

func (q *Queries) FetchUnpublishedEvents(ctx context.Context, db DBTX, limit int32) ([]AppointmentEvents, error) {
	rows, err := db.Query(ctx, fetchUnpublishedEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AppointmentEvents
	for rows.Next() {
		var i AppointmentEvents
		if err := rows.Scan(
			&i.ID,
			&i.AppointmentID,
			&i.EventType,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertAppointmentEvent = `-- name: InsertAppointmentEvent :one
INSERT INTO appointment_events (appointment_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type InsertAppointmentEventParams struct {
	AppointmentID uuid.UUID
	EventType     string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertAppointmentEvent(ctx context.Context, db DBTX, arg InsertAppointmentEventParams) (int64, error) {
	row := db.QueryRow(ctx, insertAppointmentEvent,
		arg.AppointmentID,
		arg.EventType,
		arg.Payload,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const markEventsPublished = `-- name: MarkEventsPublished :exec
UPDATE appointment_events
SET published_at = $2
WHERE id = ANY($1::bigint[])
`

type MarkEventsPublishedParams struct {
	Column1     []int64
	PublishedAt pgtype.Timestamptz
}

func (q *Queries) MarkEventsPublished(ctx context.Context, db DBTX, arg MarkEventsPublishedParams) error {
	_, err := db.Exec(ctx, markEventsPublished, arg.Column1, arg.PublishedAt)
	return err
}

const purgePublishedEvents = `-- name: PurgePublishedEvents :execrows
DELETE FROM appointment_events
WHERE published_at IS NOT NULL AND published_at < $1
`

func (q *Queries) PurgePublishedEvents(ctx context.Context, db DBTX, publishedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, purgePublishedEvents, publishedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const purgeWebhookDeliveries = `-- name: PurgeWebhookDeliveries :execrows
DELETE FROM webhook_deliveries
WHERE received_at < $1
`

func (q *Queries) PurgeWebhookDeliveries(ctx context.Context, db DBTX, receivedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, purgeWebhookDeliveries, receivedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const recordWebhookDelivery = `-- name: RecordWebhookDelivery :execrows
INSERT INTO webhook_deliveries (delivery_id, event_type, received_at)
VALUES ($1, $2, $3)
ON CONFLICT (delivery_id) DO NOTHING
`

type RecordWebhookDeliveryParams struct {
	DeliveryID string
	EventType  string
	ReceivedAt pgtype.Timestamptz
}

func (q *Queries) RecordWebhookDelivery(ctx context.Context, db DBTX, arg RecordWebhookDeliveryParams) (int64, error) {
	result, err := db.Exec(ctx, recordWebhookDelivery, arg.DeliveryID, arg.EventType, arg.ReceivedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
