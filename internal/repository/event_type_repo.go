package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
)

type EventTypeRepository struct {
	db *gorm.DB
}

func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

type eventTypeModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id;uniqueIndex:idx_event_type_owner_slug"`
	TeamID         *int64    `gorm:"column:team_id"`
	Title          string    `gorm:"column:title"`
	Slug           string    `gorm:"column:slug;uniqueIndex:idx_event_type_owner_slug"`
	Length         int       `gorm:"column:length"`
	Hidden         bool      `gorm:"column:hidden"`
	RecurringEvent *string   `gorm:"column:recurring_event;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (eventTypeModel) TableName() string { return "event_types" }

func toDomainEventType(m eventTypeModel) *domain.EventType {
	var recurring json.RawMessage
	if m.RecurringEvent != nil {
		recurring = json.RawMessage(*m.RecurringEvent)
	}

	return &domain.EventType{
		ID:             m.ID,
		UserID:         m.UserID,
		TeamID:         m.TeamID,
		Title:          m.Title,
		Slug:           m.Slug,
		Length:         m.Length,
		Hidden:         m.Hidden,
		RecurringEvent: recurring,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toEventTypeModel(et *domain.EventType) eventTypeModel {
	var recurring *string
	if len(et.RecurringEvent) > 0 {
		v := string(et.RecurringEvent)
		recurring = &v
	}

	return eventTypeModel{
		ID:             et.ID,
		UserID:         et.UserID,
		TeamID:         et.TeamID,
		Title:          et.Title,
		Slug:           et.Slug,
		Length:         et.Length,
		Hidden:         et.Hidden,
		RecurringEvent: recurring,
		CreatedAt:      et.CreatedAt,
		UpdatedAt:      et.UpdatedAt,
	}
}

func (r *EventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	m := toEventTypeModel(et)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*et = *toDomainEventType(m)
	return nil
}

func (r *EventTypeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&eventTypeModel{}).Where("user_id = ?", userID).Count(&count)
	return count, tx.Error
}

func (r *EventTypeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.EventType, error) {
	var rows []eventTypeModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.EventType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEventType(m))
	}
	return out, nil
}

func (r *EventTypeRepository) ExistsByOwnerAndSlug(ctx context.Context, userID int64, slug string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&eventTypeModel{}).
		Where("user_id = ? AND slug = ?", userID, slug).
		Count(&count)
	return count > 0, tx.Error
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	var m eventTypeModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainEventType(m), nil
}
