package user

import (
	"time"

	"github.com/google/uuid"
)

// User is created lazily on first booking or by identity provider sync.
// The booking flow never mutates an existing user.
type User struct {
	id         uuid.UUID
	externalID *string
	name       Name
	email      Email
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(name Name, email Email, now time.Time) *User {
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(id uuid.UUID, externalID *string, name Name, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:         id,
		externalID: externalID,
		name:       name,
		email:      email,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (u *User) LinkExternal(externalID string) {
	if u.externalID == nil && externalID != "" {
		u.externalID = &externalID
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) ExternalID() *string  { return u.externalID }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Identity is the caller as resolved by the external identity provider.
type Identity struct {
	Subject string
	Name    string
	Email   string
	Role    Role
}
