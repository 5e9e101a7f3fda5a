//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/identity"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints provider-style session tokens for tests.
type JWTHelper struct {
	verifier *identity.Verifier
}

func NewJWTHelper(cfg config.IdentityConfig) *JWTHelper {
	return &JWTHelper{verifier: identity.NewVerifier(cfg.JWTSecret, cfg.Issuer, 0)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id user.Identity) string {
	t.Helper()
	token, err := h.verifier.Sign(id, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, id user.Identity) string {
	t.Helper()
	token, err := h.verifier.Sign(id, -time.Hour)
	require.NoError(t, err)
	return token
}
