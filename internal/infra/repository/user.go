package repository

import (
	"context"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/repository/converter"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	EnsureUserByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureUserByEmailParams) (sqlc.Users, error)
	UpsertExternalUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertExternalUserParams) (sqlc.UpsertExternalUserRow, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) EnsureByEmail(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.EnsureUserByEmail(ctx, tx, sqlc.EnsureUserByEmailParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to ensure user by email", err)
	}

	stored, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindCorruptRow)
	}
	return stored, nil
}

func (r *UserRepository) SyncExternal(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, bool, error) {
	row, err := r.queries.UpsertExternalUser(ctx, tx, sqlc.UpsertExternalUserParams{
		ID:         u.ID(),
		ExternalID: pgconv.StringPtrToPgtype(u.ExternalID()),
		Name:       u.Name().Value(),
		Email:      u.Email().Value(),
		CreatedAt:  pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to upsert external user", err)
	}

	stored, err := converter.UserFromRow(sqlc.Users{
		ID:         row.ID,
		ExternalID: row.ExternalID,
		Name:       row.Name,
		Email:      row.Email,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	})
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to convert user", err, infra.KindCorruptRow)
	}
	return stored, row.Inserted, nil
}
