package components

import (
	"barbershop-booking/internal/handler"
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewScheduleHandler,
		api.NewAppointmentHandler,
		api.NewWebhookHandler,
		api.NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
		func(
			health *api.HealthHandler,
			schedule *api.ScheduleHandler,
			appointment *api.AppointmentHandler,
			webhook *api.WebhookHandler,
			maintenance *api.MaintenanceHandler,
		) handler.Handlers {
			return handler.Handlers{
				Health:      health,
				Schedule:    schedule,
				Appointment: appointment,
				Webhook:     webhook,
				Maintenance: maintenance,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
