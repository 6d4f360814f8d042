package eventtype

import (
	"context"

	"github.com/luiisca/cal.com/internal/domain"
)

type EventTypeRepository interface {
	Create(ctx context.Context, et *domain.EventType) error
	ListByUser(ctx context.Context, userID int64) ([]domain.EventType, error)
	ExistsByOwnerAndSlug(ctx context.Context, userID int64, slug string) (bool, error)
}
