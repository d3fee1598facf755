package booking

import (
	"strings"
	"time"
)

// State partitions a booking list relative to "now" or to status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a query string to a State. Unrecognized values fall back
// to ALL rather than failing.
func ParseState(s string) State {
	switch State(strings.ToUpper(strings.TrimSpace(s))) {
	case StateCurrent:
		return StateCurrent
	case StatePast:
		return StatePast
	case StateFuture:
		return StateFuture
	case StateWaiting:
		return StateWaiting
	case StateRejected:
		return StateRejected
	default:
		return StateAll
	}
}

// matches reports whether the booking falls under state at instant now.
// CURRENT means start <= now < end.
func (b *Booking) matches(state State, now time.Time) bool {
	switch state {
	case StateCurrent:
		return !b.Start.After(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}

// filterByState keeps the bookings matching state, evaluated against a
// single now snapshot. Always returns a non-nil slice.
func filterByState(bookings []*Booking, state State, now time.Time) []*Booking {
	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.matches(state, now) {
			result = append(result, b)
		}
	}
	return result
}
