package domain

import (
	"encoding/json"
	"time"
)

type EventType struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	TeamID *int64 `json:"team_id,omitempty"`
	Title  string `json:"title" validate:"required"`
	Slug   string `json:"slug" validate:"required"`
	Length int    `json:"length" validate:"required,gt=0"`
	Hidden bool   `json:"hidden"`

	// RecurringEvent holds the raw recurrence payload ({freq,count,interval})
	// or nil for one-off event types. Parsing lives in pkg/recurring.
	RecurringEvent json.RawMessage `json:"recurring_event,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Team *Team `json:"team,omitempty"`
}
