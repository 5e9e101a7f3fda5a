package identity

import (
	"errors"
	"strings"
	"time"

	"barbershop-booking/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingEmail = errors.New("token has no email claim")
)

// Claims carried by session tokens the identity provider issues.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secretKey []byte
	issuer    string
	leeway    time.Duration
}

func NewVerifier(secretKey, issuer string, leeway time.Duration) *Verifier {
	return &Verifier{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		leeway:    leeway,
	}
}

func (v *Verifier) Verify(tokenString string) (user.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Identity{}, ErrExpiredToken
		}
		return user.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return user.Identity{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Email) == "" {
		return user.Identity{}, ErrMissingEmail
	}

	return user.Identity{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Role:    user.ParseRole(claims.Role),
	}, nil
}

// Sign issues a token the Verifier accepts. Only local tooling and tests mint
// tokens; production tokens come from the provider.
func (v *Verifier) Sign(id user.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  id.Name,
		Email: id.Email,
		Role:  string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secretKey)
}
