package bootstrap

import (
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/identity"

	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewTokenVerifier,
		NewWebhookVerifier,
	),
)

func NewTokenVerifier(cfg config.Config) middleware.TokenVerifier {
	return identity.NewVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer, cfg.Identity.Leeway)
}

func NewWebhookVerifier(cfg config.Config) (api.WebhookVerifier, error) {
	wh, err := svix.NewWebhook(cfg.Identity.WebhookSecret)
	if err != nil {
		return nil, err
	}
	return wh, nil
}
