package cancel

import (
	"context"
	"time"

	"github.com/luiisca/cal.com/internal/domain"
)

// BookingRepository defines the booking reads and the cancellation mutation
// this module needs.
type BookingRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Booking, error)
	FindRecurringInstances(ctx context.Context, seriesID string, from time.Time) ([]domain.RecurringInstance, error)
	CancelWithReason(ctx context.Context, uid, reason string, at time.Time) (bool, error)
	CancelRemainingInSeries(ctx context.Context, seriesID, reason string, from, at time.Time) (int64, error)
}
