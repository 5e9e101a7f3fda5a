package readstore

import (
	"context"
	"encoding/json"

	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/pgconv"
)

type BarberReadQueries interface {
	GetBarberByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Barbers, error)
}

type BarberReadStore struct {
	queries BarberReadQueries
	db      sqlc.DBTX
}

func NewBarberReadStore(queries BarberReadQueries, db sqlc.DBTX) *BarberReadStore {
	return &BarberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BarberReadStore) FindByID(ctx context.Context, id int64) (*barber.Barber, error) {
	row, err := r.queries.GetBarberByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("barber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get barber by id", err)
	}

	b, err := toBarber(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode barber", err, infra.KindCorruptRow)
	}
	return b, nil
}

func toBarber(row sqlc.Barbers) (*barber.Barber, error) {
	var availability []string
	if len(row.Availability) > 0 {
		if err := json.Unmarshal(row.Availability, &availability); err != nil {
			return nil, errs.Wrap(err, "barber availability")
		}
	}
	return barber.Reconstruct(row.ID, row.Name, row.ProfilePicture, availability)
}

func toBarbers(rows []sqlc.Barbers) ([]*barber.Barber, error) {
	out := make([]*barber.Barber, 0, len(rows))
	for _, row := range rows {
		b, err := toBarber(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
