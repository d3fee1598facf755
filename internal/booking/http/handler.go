package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peershare/sharing-backend/internal/booking"
	"github.com/peershare/sharing-backend/internal/identity"
	"github.com/peershare/sharing-backend/internal/pkg/request"
	"github.com/peershare/sharing-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity.UserID(c), booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  body.Start,
		End:    body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved query parameter must be true or false", err)
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), params.ID, identity.UserID(c), approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), params.ID, identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListOwn(c *gin.Context) {
	state := booking.ParseState(c.DefaultQuery("state", "ALL"))

	bookings, err := h.service.ListForBooker(c.Request.Context(), identity.UserID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponses(bookings))
}

func (h *Handler) ListForOwner(c *gin.Context) {
	state := booking.ParseState(c.DefaultQuery("state", "ALL"))

	bookings, err := h.service.ListForOwner(c.Request.Context(), identity.UserID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponses(bookings))
}
