// Mirrors sqlc v1.29.0 output for queries/barbers.sql.
// Run `sqlc generate` in internal/infra/sqlc after changing the queries.

package sqlc

import (
	"context"
)

const getBarberByID = `-- name: GetBarberByID :one
SELECT id, name, profile_picture, availability, created_at, updated_at
FROM barbers
WHERE id = $1
`

func (q *Queries) GetBarberByID(ctx context.Context, db DBTX, id int64) (Barbers, error) {
	row := db.QueryRow(ctx, getBarberByID, id)
	var i Barbers
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ProfilePicture,
		&i.Availability,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBarbers = `-- name: ListBarbers :many
SELECT id, name, profile_picture, availability, created_at, updated_at
FROM barbers
ORDER BY name, id
`

func (q *Queries) ListBarbers(ctx context.Context, db DBTX) ([]Barbers, error) {
	rows, err := db.Query(ctx, listBarbers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Barbers
	for rows.Next() {
		var i Barbers
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.ProfilePicture,
			&i.Availability,
			&i.CreatedAt,
			&i.UpdatedAt,
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
