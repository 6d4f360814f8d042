package avatar

import (
	"context"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

type AvatarRepository interface {
	Create(ctx context.Context, a *domain.Avatar) error
}

type UserRepository interface {
	UpdateProfile(ctx context.Context, userID int64, upd repository.ProfileUpdate) (*domain.User, error)
}
