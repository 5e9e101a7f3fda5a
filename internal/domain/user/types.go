package user

import "strings"

// Role comes from the provider's "role" session claim. Customers carry none.
type Role string

const (
	RoleCustomer Role = ""
	RoleAdmin    Role = "admin"
)

// ParseRole maps unknown claim values to RoleCustomer.
func ParseRole(s string) Role {
	if Role(strings.ToLower(strings.TrimSpace(s))) == RoleAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}
