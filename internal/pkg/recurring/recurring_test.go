package recurring

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	ev := Parse(json.RawMessage(`{"freq":2,"count":6,"interval":1}`))
	require.NotNil(t, ev)
	assert.Equal(t, 2, ev.Freq)
	assert.Equal(t, 6, ev.Count)
	assert.Equal(t, 1, ev.Interval)
}

func TestParse_DefaultsInterval(t *testing.T) {
	ev := Parse(json.RawMessage(`{"freq":3,"count":10}`))
	require.NotNil(t, ev)
	assert.Equal(t, 1, ev.Interval)
}

func TestParse_MalformedDegradesToNil(t *testing.T) {
	cases := map[string]string{
		"empty object":  `{}`,
		"not json":      `every week`,
		"wrong types":   `{"freq":"weekly","count":6}`,
		"array payload": `[2,6,1]`,
		"bad freq":      `{"freq":42,"count":6}`,
		"zero count":    `{"freq":2,"count":0}`,
		"neg interval":  `{"freq":2,"count":6,"interval":-1}`,
	}
	for name, raw := range cases {
		assert.Nil(t, Parse(json.RawMessage(raw)), name)
	}
	assert.Nil(t, Parse(nil))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "every week, 6 times", Describe(&Event{Freq: 2, Count: 6, Interval: 1}, 6))
	assert.Equal(t, "every 2 weeks, 4 times", Describe(&Event{Freq: 2, Count: 6, Interval: 2}, 4))
	assert.Equal(t, "every day, 3 times", Describe(&Event{Freq: 3, Count: 3, Interval: 1}, 0))
	assert.Equal(t, "", Describe(nil, 5))
}

func TestOccurrences(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	got, err := Occurrences(&Event{Freq: 2, Count: 3, Interval: 1}, start)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, start, got[0])
	assert.Equal(t, start.AddDate(0, 0, 7), got[1])
	assert.Equal(t, start.AddDate(0, 0, 14), got[2])
}

func TestOccurrences_NilEvent(t *testing.T) {
	_, err := Occurrences(nil, time.Now())
	assert.Error(t, err)
}
