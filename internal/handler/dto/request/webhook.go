package request

import (
	"strings"

	"barbershop-booking/internal/usecase/commands"
)

// IdentityWebhookEvent is the identity provider's user event envelope.
type IdentityWebhookEvent struct {
	Type string              `json:"type" binding:"required"`
	Data IdentityWebhookUser `json:"data"`
}

type IdentityWebhookUser struct {
	ID               string                    `json:"id"`
	FirstName        string                    `json:"first_name"`
	LastName         string                    `json:"last_name"`
	EmailAddresses   []IdentityEmailAddress    `json:"email_addresses"`
	ExternalAccounts []IdentityExternalAccount `json:"external_accounts"`
}

type IdentityEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type IdentityExternalAccount struct {
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// PrimaryEmail is the first listed address, falling back to the first linked account.
func (u IdentityWebhookUser) PrimaryEmail() string {
	if len(u.EmailAddresses) > 0 && strings.TrimSpace(u.EmailAddresses[0].EmailAddress) != "" {
		return strings.TrimSpace(u.EmailAddresses[0].EmailAddress)
	}
	if len(u.ExternalAccounts) > 0 {
		return strings.TrimSpace(u.ExternalAccounts[0].EmailAddress)
	}
	return ""
}

// FullName takes both parts from the first linked account when either is missing.
func (u IdentityWebhookUser) FullName() string {
	first, last := u.FirstName, u.LastName
	if (first == "" || last == "") && len(u.ExternalAccounts) > 0 {
		first = u.ExternalAccounts[0].FirstName
		last = u.ExternalAccounts[0].LastName
	}
	return strings.TrimSpace(first + " " + last)
}

func (e IdentityWebhookEvent) ToCommand(deliveryID string) commands.SyncIdentityRequest {
	return commands.SyncIdentityRequest{
		DeliveryID: deliveryID,
		EventType:  e.Type,
		ExternalID: e.Data.ID,
		Email:      e.Data.PrimaryEmail(),
		Name:       e.Data.FullName(),
	}
}
