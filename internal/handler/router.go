package handler

import (
	"net/http"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *api.HealthHandler
	Schedule    *api.ScheduleHandler
	Appointment *api.AppointmentHandler
	Webhook     *api.WebhookHandler
	Maintenance *api.MaintenanceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, middleware.RateLimit(limiter, cfg.Redis.FailOpen))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/barbers", Handler: h.Schedule.ListBarbers},
			{Method: http.MethodPost, Path: "/webhooks/identity", Handler: h.Webhook.Identity},
		})

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Schedule.GetDaySlots},
			})

			authRequired := appointments.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Book, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/cancel", Handler: h.Appointment.Cancel, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Appointment.Mine},
			})
		}

		maintenance := apiGroup.Group("/maintenance")
		maintenance.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(maintenance, []route{
				{Method: http.MethodPost, Path: "/cleanup", Handler: h.Maintenance.Cleanup},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
