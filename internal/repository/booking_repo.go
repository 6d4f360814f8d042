package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	UID                string     `gorm:"column:uid;uniqueIndex"`
	Title              string     `gorm:"column:title"`
	Description        string     `gorm:"column:description;type:text"`
	StartTime          time.Time  `gorm:"column:start_time"`
	EndTime            time.Time  `gorm:"column:end_time"`
	Status             string     `gorm:"column:status"`
	UserID             int64      `gorm:"column:user_id"`
	EventTypeID        int64      `gorm:"column:event_type_id"`
	RecurringEventID   *string    `gorm:"column:recurring_event_id;index"`
	CancellationReason *string    `gorm:"column:cancellation_reason;type:text"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var seriesID string
	if m.RecurringEventID != nil {
		seriesID = *m.RecurringEventID
	}
	var reason string
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		UID:                m.UID,
		Title:              m.Title,
		Description:        m.Description,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		Status:             domain.BookingStatus(m.Status),
		UserID:             m.UserID,
		EventTypeID:        m.EventTypeID,
		RecurringEventID:   seriesID,
		CancellationReason: reason,
		CancelledAt:        m.CancelledAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var seriesID *string
	if b.RecurringEventID != "" {
		v := b.RecurringEventID
		seriesID = &v
	}
	var reason *string
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		UID:                b.UID,
		Title:              b.Title,
		Description:        b.Description,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		UserID:             b.UserID,
		EventTypeID:        b.EventTypeID,
		RecurringEventID:   seriesID,
		CancellationReason: reason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByUID resolves a booking by its opaque token with the owning user and
// event type (and the event type's team) projected. Returns (nil, nil) when
// no booking matches.
func (r *BookingRepository) GetByUID(ctx context.Context, uid string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "uid = ?", uid)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	b := toDomainBooking(m)

	var um userModel
	if tx := r.db.WithContext(ctx).First(&um, "id = ?", m.UserID); tx.Error != nil {
		if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, tx.Error
		}
	} else {
		b.User = toDomainUser(um)
	}

	var em eventTypeModel
	if tx := r.db.WithContext(ctx).First(&em, "id = ?", m.EventTypeID); tx.Error != nil {
		if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, tx.Error
		}
		return b, nil
	}
	b.EventType = toDomainEventType(em)

	if em.TeamID != nil {
		var tm teamModel
		if tx := r.db.WithContext(ctx).First(&tm, "id = ?", *em.TeamID); tx.Error != nil {
			if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
				return nil, tx.Error
			}
		} else {
			b.EventType.Team = toDomainTeam(tm)
		}
	}

	return b, nil
}

// FindRecurringInstances returns the future, still-live siblings of a
// recurring series, ascending by start time.
func (r *BookingRepository) FindRecurringInstances(ctx context.Context, seriesID string, from time.Time) ([]domain.RecurringInstance, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("recurring_event_id = ?", seriesID).
		Where("start_time >= ?", from).
		Where("status NOT IN ?", []string{string(domain.BookingCancelled), string(domain.BookingRejected)}).
		Order("start_time ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RecurringInstance, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.RecurringInstance{StartTime: m.StartTime, EndTime: m.EndTime})
	}
	return out, nil
}

// CancelWithReason marks a live booking cancelled. Returns false when the
// uid is unknown or the booking is already cancelled, which makes repeated
// cancellation a store-side no-op.
func (r *BookingRepository) CancelWithReason(ctx context.Context, uid, reason string, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("uid = ?", uid).
		Where("status <> ?", string(domain.BookingCancelled)).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        at,
			"updated_at":          at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CancelRemainingInSeries cancels every future, still-live instance of a
// recurring series and reports how many rows were touched.
func (r *BookingRepository) CancelRemainingInSeries(ctx context.Context, seriesID, reason string, from, at time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("recurring_event_id = ?", seriesID).
		Where("start_time >= ?", from).
		Where("status NOT IN ?", []string{string(domain.BookingCancelled), string(domain.BookingRejected)}).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        at,
			"updated_at":          at,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
