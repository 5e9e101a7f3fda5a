package commands

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

type SyncIdentityRequest struct {
	DeliveryID string
	EventType  string
	ExternalID string
	Email      string
	Name       string
}

type SyncResult struct {
	UserID    uuid.UUID
	Created   bool
	Duplicate bool
	Ignored   bool
}

type IdentityCommands interface {
	Sync(ctx context.Context, req SyncIdentityRequest) (*SyncResult, error)
}

type identityUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIdentityCommands(uow shared.UnitOfWork, clk clock.Clock) IdentityCommands {
	return &identityUseCaseImpl{uow: uow, clock: clk}
}

func (uc *identityUseCaseImpl) Sync(ctx context.Context, req SyncIdentityRequest) (*SyncResult, error) {
	if req.EventType != EventUserCreated && req.EventType != EventUserUpdated {
		slog.DebugContext(ctx, "identity event ignored", "event_type", req.EventType, "delivery_id", req.DeliveryID)
		return &SyncResult{Ignored: true}, nil
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, invalid(err, ErrInvalidIdentity)
	}
	now := uc.clock.Now()

	u := user.NewUser(user.NameOrDefault(req.Name, email), email, now)
	u.LinkExternal(req.ExternalID)

	result := &SyncResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = SyncResult{}
		if req.DeliveryID != "" {
			fresh, derr := tx.Deliveries().Record(ctx, tx.DB(), req.DeliveryID, req.EventType, now)
			if derr != nil {
				return derr
			}
			if !fresh {
				result.Duplicate = true
				return nil
			}
		}

		stored, created, derr := tx.Users().SyncExternal(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return invalid(derr, ErrIdentityConflict)
			}
			return derr
		}
		result.UserID = stored.ID()
		result.Created = created
		return nil
	})
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	slog.InfoContext(ctx, "identity synced",
		"delivery_id", req.DeliveryID,
		"event_type", req.EventType,
		"user_id", result.UserID.String(),
		"created", result.Created,
		"duplicate", result.Duplicate)
	return result, nil
}
