package onboarding

import (
	"context"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

type UserRepository interface {
	UpdateProfile(ctx context.Context, userID int64, upd repository.ProfileUpdate) (*domain.User, error)
}

type EventTypeRepository interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Create(ctx context.Context, et *domain.EventType) error
}
