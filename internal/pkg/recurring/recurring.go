// Package recurring handles the recurrence payload attached to event types:
// a JSON object {freq, count, interval} using rrule frequency numbering
// (0=yearly .. 6=secondly).
package recurring

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

type Event struct {
	Freq     int `json:"freq"`
	Count    int `json:"count"`
	Interval int `json:"interval"`
}

var freqUnits = map[int]string{
	int(rrule.YEARLY):   "year",
	int(rrule.MONTHLY):  "month",
	int(rrule.WEEKLY):   "week",
	int(rrule.DAILY):    "day",
	int(rrule.HOURLY):   "hour",
	int(rrule.MINUTELY): "minute",
	int(rrule.SECONDLY): "second",
}

// Parse decodes a stored recurrence payload. Anything that does not decode
// into a sane {freq,count,interval} object degrades to nil (no recurrence)
// rather than surfacing an error; a missing interval defaults to 1.
func Parse(raw json.RawMessage) *Event {
	if len(raw) == 0 {
		return nil
	}

	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil
	}
	if _, ok := freqUnits[ev.Freq]; !ok {
		return nil
	}
	if ev.Count <= 0 || ev.Interval < 0 {
		return nil
	}
	if ev.Interval == 0 {
		ev.Interval = 1
	}
	return &ev
}

// Describe renders the "every week, 6 times" line shown on the cancellation
// page. occurrenceCount is the number of instances actually being displayed,
// which can be lower than ev.Count once part of the series is in the past.
func Describe(ev *Event, occurrenceCount int) string {
	if ev == nil {
		return ""
	}
	if occurrenceCount <= 0 {
		occurrenceCount = ev.Count
	}

	unit := freqUnits[ev.Freq]
	if ev.Interval > 1 {
		return fmt.Sprintf("every %d %ss, %d times", ev.Interval, unit, occurrenceCount)
	}
	return fmt.Sprintf("every %s, %d times", unit, occurrenceCount)
}

// Occurrences expands the series into concrete start times beginning at
// dtstart. Used when materializing the bookings of a recurring series.
func Occurrences(ev *Event, dtstart time.Time) ([]time.Time, error) {
	if ev == nil {
		return nil, fmt.Errorf("recurring: no recurrence event")
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.Frequency(ev.Freq),
		Interval: ev.Interval,
		Count:    ev.Count,
		Dtstart:  dtstart,
	})
	if err != nil {
		return nil, fmt.Errorf("recurring: build rule: %w", err)
	}
	return r.All(), nil
}
