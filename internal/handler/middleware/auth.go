package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type TokenVerifier interface {
	Verify(token string) (user.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

const ctxIdentityKey = "identity"

var (
	errUnauthenticated  = errs.New("unauthenticated")
	errInsufficientRole = errs.New("insufficient role")
)

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// RequireAuth accepts a provider-issued session token as a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
			return
		}

		id, err := m.verifier.Verify(token)
		if err != nil {
			slog.Warn("Token verification failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, id)
		c.Set("jwt_claims", map[string]any{
			"user_id": id.Subject,
			"role":    string(id.Role),
		})
		c.Next()
	}
}

// RequireRole runs after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
			return
		}
		if id.Role != role {
			slog.Warn("Role check failed", "user_id", id.Subject, "required", string(role))
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}

	id, ok := v.(user.Identity)
	return id, ok
}

// SetIdentity is used by tests that bypass token verification.
func SetIdentity(c *gin.Context, id user.Identity) {
	c.Set(ctxIdentityKey, id)
}
