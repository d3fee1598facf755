package http

import (
	"time"

	"github.com/peershare/sharing-backend/internal/booking"
	itemHttp "github.com/peershare/sharing-backend/internal/item/http"
	userHttp "github.com/peershare/sharing-backend/internal/user/http"
)

// CreateBookingBody deliberately leaves every field optional at the binding
// level: the booking service owns the validation order and its messages.
type CreateBookingBody struct {
	ItemID string    `json:"itemId" binding:"omitempty,uuid"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type BookingResponse struct {
	ID     string           `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
	Item   itemHttp.ItemTag `json:"item"`
	Booker userHttp.UserTag `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: userHttp.UserTag{ID: b.BookerID},
	}
}

func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
