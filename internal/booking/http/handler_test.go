package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/sharing-backend/internal/booking"
	"github.com/peershare/sharing-backend/internal/identity"
)

const (
	bookerID  = "2f1c9a6e-0d3b-4a8f-b1c2-9e4d5f6a7b8c"
	ownerID   = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"
	bookingID = "4b3a2c1d-0e9f-4a8b-b7c6-d5e4f3a2b1c0"
	itemID    = "6e5d4c3b-2a19-4f8e-9d7c-6b5a4e3d2c1b"
)

// fakeService records calls and serves canned bookings keyed by id.
type fakeService struct {
	bookings map[string]*booking.Booking
	lastList struct {
		callerID string
		state    booking.State
	}
	createErr error
	updateErr error
}

func (s *fakeService) Create(_ context.Context, callerID string, req booking.CreateRequest) (*booking.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &booking.Booking{
		ID:       bookingID,
		ItemID:   req.ItemID,
		ItemName: "Drill",
		BookerID: callerID,
		Start:    req.Start,
		End:      req.End,
		Status:   booking.StatusWaiting,
	}, nil
}

func (s *fakeService) UpdateStatus(_ context.Context, id, _ string, approved bool) (*booking.Booking, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	if approved {
		b.Status = booking.StatusApproved
	} else {
		b.Status = booking.StatusRejected
	}
	return b, nil
}

func (s *fakeService) GetByID(_ context.Context, id, _ string) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (s *fakeService) ListForBooker(_ context.Context, bookerID string, state booking.State) ([]*booking.Booking, error) {
	s.lastList.callerID = bookerID
	s.lastList.state = state
	return []*booking.Booking{}, nil
}

func (s *fakeService) ListForOwner(_ context.Context, ownerID string, state booking.State) ([]*booking.Booking, error) {
	s.lastList.callerID = ownerID
	s.lastList.state = state
	return []*booking.Booking{}, nil
}

func (s *fakeService) LastForItem(context.Context, string, time.Time) (*booking.Booking, error) {
	return nil, nil
}

func (s *fakeService) NextForItem(context.Context, string, time.Time) (*booking.Booking, error) {
	return nil, nil
}

func (s *fakeService) HasCompletedBooking(context.Context, string, string, time.Time) (bool, error) {
	return false, nil
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("")
	g.Use(identity.Required())
	RegisterRoutes(g, NewHandler(svc))
	return r
}

func doRequest(r *gin.Engine, method, path, callerID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set(identity.Header, callerID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	t.Run("created with response shape", func(t *testing.T) {
		r := newTestRouter(&fakeService{})

		w := doRequest(r, http.MethodPost, "/bookings", bookerID, CreateBookingBody{
			ItemID: itemID,
			Start:  start,
			End:    end,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, bookingID, resp.ID)
		assert.Equal(t, "WAITING", resp.Status)
		assert.Equal(t, itemID, resp.Item.ID)
		assert.Equal(t, "Drill", resp.Item.Name)
		assert.Equal(t, bookerID, resp.Booker.ID)
	})

	t.Run("missing identity header", func(t *testing.T) {
		r := newTestRouter(&fakeService{})

		w := doRequest(r, http.MethodPost, "/bookings", "", CreateBookingBody{ItemID: itemID})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("service errors map to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{booking.ErrItemUnavailable, http.StatusConflict},
			{booking.ErrStartInPast, http.StatusBadRequest},
			{booking.ErrItemRequired, http.StatusBadRequest},
		}
		for _, tc := range cases {
			r := newTestRouter(&fakeService{createErr: tc.err})
			w := doRequest(r, http.MethodPost, "/bookings", bookerID, CreateBookingBody{
				ItemID: itemID,
				Start:  start,
				End:    end,
			})
			assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
		}
	})
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	seeded := func() *fakeService {
		return &fakeService{bookings: map[string]*booking.Booking{
			bookingID: {
				ID:       bookingID,
				ItemID:   itemID,
				ItemName: "Drill",
				BookerID: bookerID,
				Status:   booking.StatusWaiting,
			},
		}}
	}

	t.Run("approve", func(t *testing.T) {
		r := newTestRouter(seeded())

		w := doRequest(r, http.MethodPatch, fmt.Sprintf("/bookings/%s?approved=true", bookingID), ownerID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "APPROVED", resp.Status)
	})

	t.Run("reject", func(t *testing.T) {
		r := newTestRouter(seeded())

		w := doRequest(r, http.MethodPatch, fmt.Sprintf("/bookings/%s?approved=false", bookingID), ownerID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "REJECTED", resp.Status)
	})

	t.Run("approved parameter required", func(t *testing.T) {
		r := newTestRouter(seeded())

		w := doRequest(r, http.MethodPatch, "/bookings/"+bookingID, ownerID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc := seeded()
		svc.updateErr = booking.ErrNotItemOwner
		r := newTestRouter(svc)

		w := doRequest(r, http.MethodPatch, fmt.Sprintf("/bookings/%s?approved=true", bookingID), bookerID, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetBookingEndpoint(t *testing.T) {
	r := newTestRouter(&fakeService{bookings: map[string]*booking.Booking{
		bookingID: {ID: bookingID, ItemID: itemID, BookerID: bookerID, Status: booking.StatusWaiting},
	}})

	t.Run("found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/bookings/"+bookingID, bookerID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/bookings/"+itemID, bookerID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/bookings/not-a-uuid", bookerID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBookingsEndpoint(t *testing.T) {
	t.Run("state defaults to ALL", func(t *testing.T) {
		svc := &fakeService{}
		r := newTestRouter(svc)

		w := doRequest(r, http.MethodGet, "/bookings", bookerID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateAll, svc.lastList.state)
		assert.Equal(t, bookerID, svc.lastList.callerID)
	})

	t.Run("unknown state falls back to ALL", func(t *testing.T) {
		svc := &fakeService{}
		r := newTestRouter(svc)

		w := doRequest(r, http.MethodGet, "/bookings?state=BOGUS", bookerID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateAll, svc.lastList.state)
	})

	t.Run("owner listing", func(t *testing.T) {
		svc := &fakeService{}
		r := newTestRouter(svc)

		w := doRequest(r, http.MethodGet, "/bookings/owner?state=waiting", ownerID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateWaiting, svc.lastList.state)
		assert.Equal(t, ownerID, svc.lastList.callerID)

		var resp []BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp)
	})
}
