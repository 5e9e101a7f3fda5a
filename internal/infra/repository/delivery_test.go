//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryWriteQueries struct {
	mock.Mock
}

func (m *MockDeliveryWriteQueries) RecordWebhookDelivery(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWebhookDeliveryParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryWriteQueries) PurgeWebhookDeliveries(ctx context.Context, db sqlc.DBTX, receivedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, receivedAt)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventWriteQueries struct {
	mock.Mock
}

func (m *MockEventWriteQueries) InsertAppointmentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAppointmentEventParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventWriteQueries) PurgePublishedEvents(ctx context.Context, db sqlc.DBTX, publishedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, publishedAt)
	return args.Get(0).(int64), args.Error(1)
}

func TestDeliveryRecord(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantFresh bool
		wantErr   bool
	}{
		{name: "first delivery", affected: 1, wantFresh: true},
		{name: "replayed delivery", affected: 0, wantFresh: false},
		{name: "database error", mockError: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDeliveryWriteQueries)
			mockQueries.On("RecordWebhookDelivery", mock.Anything, mock.Anything, sqlc.RecordWebhookDeliveryParams{
				DeliveryID: "msg_1",
				EventType:  "user.created",
				ReceivedAt: pgconv.TimeToPgtype(at),
			}).Return(tt.affected, tt.mockError)

			repo := NewDeliveryRepository(mockQueries)
			fresh, err := repo.Record(context.Background(), nil, "msg_1", "user.created", at)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFresh, fresh)
		})
	}
}

func TestPurge(t *testing.T) {
	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	deliveries := new(MockDeliveryWriteQueries)
	deliveries.On("PurgeWebhookDeliveries", mock.Anything, mock.Anything, pgconv.TimeToPgtype(before)).Return(int64(3), nil)
	n, err := NewDeliveryRepository(deliveries).Purge(context.Background(), nil, before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	events := new(MockEventWriteQueries)
	events.On("PurgePublishedEvents", mock.Anything, mock.Anything, pgconv.TimeToPgtype(before)).Return(int64(0), assert.AnError)
	_, err = NewEventRepository(events).PurgePublished(context.Background(), nil, before)
	assert.Error(t, err)
}

func TestEventAppend(t *testing.T) {
	e := shared.OutboxEvent{
		AppointmentID: uuid.New(),
		Type:          "appointment.booked",
		Payload:       []byte(`{"status":"booked"}`),
		CreatedAt:     time.Now(),
	}

	mockQueries := new(MockEventWriteQueries)
	mockQueries.On("InsertAppointmentEvent", mock.Anything, mock.Anything, sqlc.InsertAppointmentEventParams{
		AppointmentID: e.AppointmentID,
		EventType:     e.Type,
		Payload:       e.Payload,
		CreatedAt:     pgconv.TimeToPgtype(e.CreatedAt),
	}).Return(int64(42), nil)

	err := NewEventRepository(mockQueries).Append(context.Background(), nil, e)
	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}
