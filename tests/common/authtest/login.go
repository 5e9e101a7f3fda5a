//go:build unit || e2e

package authtest

import (
	"testing"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/tests/common/dbtest"
)

// SignIn mirrors what the provider webhook would have done for a new user and
// returns a session token for them.
func SignIn(t *testing.T, db dbtest.DBLike, cfg config.IdentityConfig, email, name string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, name)
	return NewJWTHelper(cfg).GenerateToken(t, user.Identity{
		Subject: "user_" + email,
		Name:    name,
		Email:   email,
	})
}

// Anonymous returns a valid token for someone the user store has never seen.
func Anonymous(t *testing.T, cfg config.IdentityConfig, email string) string {
	t.Helper()
	return NewJWTHelper(cfg).GenerateToken(t, user.Identity{Subject: "user_" + email, Email: email})
}

// Admin returns a token carrying the admin role claim.
func Admin(t *testing.T, cfg config.IdentityConfig) string {
	t.Helper()
	return NewJWTHelper(cfg).GenerateToken(t, user.Identity{
		Subject: "user_admin",
		Email:   "admin@example.com",
		Role:    user.RoleAdmin,
	})
}
