//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-booking/internal/domain/user"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Subject string
	Name    string
	Email   string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Subject: "user_alice",
		Name:    "Alice Smith",
		Email:   "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	return user.NewUser(name, email, time.Now()), nil
}

func (u *UserBuilder) BuildIdentity() user.Identity {
	return user.Identity{
		Subject: u.Subject,
		Name:    u.Name,
		Email:   u.Email,
	}
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:         uuid.New(),
		ExternalID: pgtype.Text{String: u.Subject, Valid: u.Subject != ""},
		Name:       u.Name,
		Email:      u.Email,
		CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithSubject(subject string) *UserBuilder {
	u.Subject = subject
	return u
}

func (u *UserBuilder) AsBob() *UserBuilder {
	u.Subject = "user_bob"
	u.Name = "Bob Lee"
	u.Email = "bob@example.com"
	return u
}
