package eventtype

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/pkg/recurring"
)

type Service struct {
	eventTypes EventTypeRepository
}

func NewService(eventTypes EventTypeRepository) *Service {
	return &Service{eventTypes: eventTypes}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateEventTypeRequest) (*domain.EventType, error) {
	// A recurrence payload that does not parse is stored as no recurrence.
	var recurrencePayload []byte
	if rec := recurring.Parse(req.RecurringEvent); rec != nil {
		recurrencePayload = req.RecurringEvent
	}

	exists, err := s.eventTypes.ExistsByOwnerAndSlug(ctx, userID, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugExists
	}

	et := &domain.EventType{
		UserID:         userID,
		Title:          req.Title,
		Slug:           req.Slug,
		Length:         req.Length,
		Hidden:         req.Hidden,
		RecurringEvent: recurrencePayload,
	}

	if err := s.eventTypes.Create(ctx, et); err != nil {
		// Backstop for the race the pre-check cannot close.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSlugExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	return et, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.EventType, error) {
	return s.eventTypes.ListByUser(ctx, userID)
}
