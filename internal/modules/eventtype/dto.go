package eventtype

import "encoding/json"

type CreateEventTypeRequest struct {
	Title  string `json:"title" validate:"required"`
	Slug   string `json:"slug" validate:"required"`
	Length int    `json:"length" validate:"required,gt=0"`
	Hidden bool   `json:"hidden"`

	// Optional {freq,count,interval} recurrence payload.
	RecurringEvent json.RawMessage `json:"recurringEvent,omitempty"`
}
