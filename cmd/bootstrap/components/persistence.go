package components

import (
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/infra/readstore"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/infra/uow"
	"barbershop-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		NewPinger,
		fx.As(new(api.Pinger)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleViewQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Write repositories are transaction scoped; the unit of work builds them per Tx.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPinger(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
