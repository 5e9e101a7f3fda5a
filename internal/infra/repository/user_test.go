//go:build unit

package repository

import (
	"context"
	"testing"

	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) EnsureUserByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureUserByEmailParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpsertExternalUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertExternalUserParams) (sqlc.UpsertExternalUserRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UpsertExternalUserRow), args.Error(1)
}

func TestEnsureByEmail(t *testing.T) {
	t.Run("returns the stored row, not the candidate", func(t *testing.T) {
		candidate, err := builder.NewUserBuilder().WithName("Someone Else").BuildDomain()
		require.NoError(t, err)
		existing := builder.NewUserBuilder().BuildInfra()

		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("EnsureUserByEmail", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.EnsureUserByEmailParams) bool {
			return p.Email == "alice@example.com" && p.ID == candidate.ID()
		})).Return(existing, nil)

		repo := NewUserRepository(mockQueries)
		stored, err := repo.EnsureByEmail(context.Background(), nil, candidate)
		require.NoError(t, err)

		assert.Equal(t, existing.ID, stored.ID())
		assert.Equal(t, "Alice Smith", stored.Name().Value())
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		candidate, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("EnsureUserByEmail", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Users{}, assert.AnError)

		repo := NewUserRepository(mockQueries)
		_, err = repo.EnsureByEmail(context.Background(), nil, candidate)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSyncExternal(t *testing.T) {
	tests := []struct {
		name        string
		inserted    bool
		mockError   error
		wantCreated bool
		wantKind    infra.RepositoryErrorKind
	}{
		{name: "new user", inserted: true, wantCreated: true},
		{name: "existing user linked", inserted: false, wantCreated: false},
		{
			name:      "external id taken by another email",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_external_id_key"},
			wantKind:  infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)
			u.LinkExternal("user_alice")
			row := builder.NewUserBuilder().BuildInfra()

			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpsertExternalUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpsertExternalUserParams) bool {
				return p.ExternalID.Valid && p.ExternalID.String == "user_alice"
			})).Return(sqlc.UpsertExternalUserRow{
				ID:         row.ID,
				ExternalID: row.ExternalID,
				Name:       row.Name,
				Email:      row.Email,
				CreatedAt:  row.CreatedAt,
				UpdatedAt:  row.UpdatedAt,
				Inserted:   tt.inserted,
			}, tt.mockError)

			repo := NewUserRepository(mockQueries)
			stored, created, err := repo.SyncExternal(context.Background(), nil, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			require.NotNil(t, stored.ExternalID())
			assert.Equal(t, "user_alice", *stored.ExternalID())
		})
	}
}
