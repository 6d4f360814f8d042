package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingRejected  BookingStatus = "REJECTED"
)

type Booking struct {
	ID          int64         `json:"id"`
	UID         string        `json:"uid"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      BookingStatus `json:"status"`
	UserID      int64         `json:"user_id"`
	EventTypeID int64         `json:"event_type_id"`

	// RecurringEventID links all instances of one recurring series.
	// Empty for one-off bookings.
	RecurringEventID string `json:"recurring_event_id,omitempty"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User      *User      `json:"user,omitempty"`
	EventType *EventType `json:"event_type,omitempty"`
}

// RecurringInstance is a future sibling of a recurring booking series,
// projected down to the pair of timestamps the cancellation page displays.
type RecurringInstance struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
