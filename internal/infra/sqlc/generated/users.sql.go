// Mirrors sqlc v1.29.0 output for queries/users.sql.
// Run `sqlc generate` in internal/infra/sqlc after changing the queries.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const ensureUserByEmail = `-- name: EnsureUserByEmail :one
INSERT INTO users (id, name, email, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, external_id, name, email, created_at, updated_at
`

type EnsureUserByEmailParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt pgtype.Timestamptz
}

// Lookup-or-create keyed by email. The no-op update makes RETURNING yield the
// existing row without touching its name.
func (q *Queries) EnsureUserByEmail(ctx context.Context, db DBTX, arg EnsureUserByEmailParams) (Users, error) {
	row := db.QueryRow(ctx, ensureUserByEmail,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.CreatedAt,
	)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.ExternalID,
		&i.Name,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, external_id, name, email, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.ExternalID,
		&i.Name,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByExternalID = `-- name: FindUserByExternalID :one
SELECT id, external_id, name, email, created_at, updated_at
FROM users
WHERE external_id = $1
`

func (q *Queries) FindUserByExternalID(ctx context.Context, db DBTX, externalID pgtype.Text) (Users, error) {
	row := db.QueryRow(ctx, findUserByExternalID, externalID)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.ExternalID,
		&i.Name,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertExternalUser = `-- name: UpsertExternalUser :one
INSERT INTO users (id, external_id, name, email, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (email) DO UPDATE
SET external_id = COALESCE(users.external_id, EXCLUDED.external_id),
    updated_at  = EXCLUDED.updated_at
RETURNING id, external_id, name, email, created_at, updated_at, (xmax = 0)::boolean AS inserted
`

type UpsertExternalUserParams struct {
	ID         uuid.UUID
	ExternalID pgtype.Text
	Name       string
	Email      string
	CreatedAt  pgtype.Timestamptz
}

type UpsertExternalUserRow struct {
	ID         uuid.UUID
	ExternalID pgtype.Text
	Name       string
	Email      string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
	Inserted   bool
}

func (q *Queries) UpsertExternalUser(ctx context.Context, db DBTX, arg UpsertExternalUserParams) (UpsertExternalUserRow, error) {
	row := db.QueryRow(ctx, upsertExternalUser,
		arg.ID,
		arg.ExternalID,
		arg.Name,
		arg.Email,
		arg.CreatedAt,
	)
	var i UpsertExternalUserRow
	err := row.Scan(
		&i.ID,
		&i.ExternalID,
		&i.Name,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Inserted,
	)
	return i, err
}
