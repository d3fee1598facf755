package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peershare/sharing-backend/internal/identity"
	"github.com/peershare/sharing-backend/internal/itemrequest"
	"github.com/peershare/sharing-backend/internal/pkg/request"
	"github.com/peershare/sharing-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	r, err := h.service.Create(c.Request.Context(), identity.UserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemRequestResponse(r))
}

func (h *Handler) ListOwn(c *gin.Context) {
	requests, err := h.service.ListOwn(c.Request.Context(), identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemRequestResponse, len(requests))
	for i, r := range requests {
		items[i] = NewItemRequestResponse(r)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListOthers(c *gin.Context) {
	var params request.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid paging parameters", err)
		return
	}

	requests, total, err := h.service.ListOthers(c.Request.Context(), identity.UserID(c), params.From, params.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemRequestResponse, len(requests))
	for i, r := range requests {
		items[i] = NewItemRequestResponse(r)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, params.From, params.Size, total))
}

func (h *Handler) Get(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid request id", err)
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(r))
}
