package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	cases := map[string]State{
		"ALL":      StateAll,
		"CURRENT":  StateCurrent,
		"PAST":     StatePast,
		"FUTURE":   StateFuture,
		"WAITING":  StateWaiting,
		"REJECTED": StateRejected,
		"current":  StateCurrent,
		" past ":   StatePast,
		"":         StateAll,
		"BOGUS":    StateAll,
		"CANCELED": StateAll, // not a list filter
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseState(input), "input %q", input)
	}
}

func TestStateMatching(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("current includes start boundary, excludes end boundary", func(t *testing.T) {
		atStart := &Booking{Start: now, End: now.Add(time.Hour), Status: StatusApproved}
		assert.True(t, atStart.matches(StateCurrent, now))

		atEnd := &Booking{Start: now.Add(-time.Hour), End: now, Status: StatusApproved}
		assert.False(t, atEnd.matches(StateCurrent, now))
		assert.False(t, atEnd.matches(StatePast, now), "end == now is not yet past")
	})

	t.Run("waiting and rejected filter on status regardless of time", func(t *testing.T) {
		pastWaiting := &Booking{Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour), Status: StatusWaiting}
		assert.True(t, pastWaiting.matches(StateWaiting, now))
		assert.False(t, pastWaiting.matches(StateRejected, now))
	})
}
