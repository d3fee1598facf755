package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peershare/sharing-backend/internal/booking"
	"github.com/peershare/sharing-backend/internal/comment"
	"github.com/peershare/sharing-backend/internal/identity"
	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/pkg/request"
	"github.com/peershare/sharing-backend/internal/pkg/response"
)

type Handler struct {
	service  item.Service
	comments comment.Service
	bookings booking.Service
}

func NewHandler(service item.Service, comments comment.Service, bookings booking.Service) *Handler {
	return &Handler{
		service:  service,
		comments: comments,
		bookings: bookings,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     identity.UserID(c),
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Update(c.Request.Context(), params.ID, identity.UserID(c), item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Get(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	it, err := h.service.GetByID(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.buildDetail(c, it, identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListOwn returns the caller's items, each with the owner booking view.
func (h *Handler) ListOwn(c *gin.Context) {
	callerID := identity.UserID(c)

	items, err := h.service.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	details := make([]ItemDetailResponse, 0, len(items))
	for _, it := range items {
		detail, err := h.buildDetail(c, it, callerID)
		if err != nil {
			response.Error(c, err)
			return
		}
		details = append(details, detail)
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]ItemResponse, len(items))
	for i, it := range items {
		results[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) AddComment(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	var body AddCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	cm, err := h.comments.Add(c.Request.Context(), params.ID, identity.UserID(c), body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}

// buildDetail assembles the item view: comments for everyone, the last/next
// booking starts only for the item's owner.
func (h *Handler) buildDetail(c *gin.Context, it *item.Item, callerID string) (ItemDetailResponse, error) {
	ctx := c.Request.Context()

	detail := ItemDetailResponse{
		ItemResponse: NewItemResponse(it),
		Comments:     []CommentResponse{},
	}

	comments, err := h.comments.ListByItem(ctx, it.ID)
	if err != nil {
		return detail, err
	}
	for _, cm := range comments {
		detail.Comments = append(detail.Comments, NewCommentResponse(cm))
	}

	if it.OwnerID == callerID {
		now := time.Now()

		last, err := h.bookings.LastForItem(ctx, it.ID, now)
		if err != nil {
			return detail, err
		}
		if last != nil {
			detail.LastBooking = &last.Start
		}

		next, err := h.bookings.NextForItem(ctx, it.ID, now)
		if err != nil {
			return detail, err
		}
		if next != nil {
			detail.NextBooking = &next.Start
		}
	}

	return detail, nil
}
