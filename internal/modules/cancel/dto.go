package cancel

import (
	"time"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/pkg/recurring"
)

// CancelRequest is the DELETE /cancel body. The reason may be empty;
// allRemainingBookings mirrors whether the confirmation view displayed the
// whole remaining series.
type CancelRequest struct {
	UID                  string `json:"uid" binding:"required"`
	CancellationReason   string `json:"cancellationReason"`
	AllRemainingBookings bool   `json:"allRemainingBookings"`
}

// Profile is the display projection for the page header: the event type's
// team when one exists, otherwise the booking's owning user.
type Profile struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	BrandColor     string `json:"brandColor,omitempty"`
	DarkBrandColor string `json:"darkBrandColor,omitempty"`
}

type BookingView struct {
	UID       string               `json:"uid"`
	Title     string               `json:"title"`
	StartTime time.Time            `json:"startTime"`
	EndTime   time.Time            `json:"endTime"`
	Status    domain.BookingStatus `json:"status"`
	Team      bool                 `json:"team"`

	// RecurringEvent is the parsed recurrence rule, nil for one-off
	// bookings and for malformed stored payloads.
	RecurringEvent       *recurring.Event `json:"recurringEvent"`
	RecurringDescription string           `json:"recurringDescription,omitempty"`
}

type InstanceView struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Display   string    `json:"display"`
}

// PageData is everything the confirmation screen needs.
type PageData struct {
	Profile             Profile        `json:"profile"`
	Booking             *BookingView   `json:"booking"`
	RecurringInstances  []InstanceView `json:"recurringInstances"`
	CancellationAllowed bool           `json:"cancellationAllowed"`
	RescheduleURL       string         `json:"rescheduleUrl"`
}

type CancelResult struct {
	SuccessURL string `json:"successUrl"`
	Cancelled  int64  `json:"cancelled"`
}
