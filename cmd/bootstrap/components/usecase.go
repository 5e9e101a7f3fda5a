package components

import (
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(shop shared.ShopSettings) clock.Clock {
		return clock.NewZonedClock(clock.NewRealClock(), shop.Location)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewIdentityCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.MaintenanceCommands {
			return commands.NewMaintenanceCommands(uow, clk, cfg.Scheduler.CleanupRetention)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewReservationQueries,
	),
)
