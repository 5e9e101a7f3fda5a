package bootstrap

import (
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		shared.NewShopSettings,
	),
)
