package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peershare/sharing-backend/internal/identity"
	"github.com/peershare/sharing-backend/internal/photo"
	"github.com/peershare/sharing-backend/internal/pkg/request"
	"github.com/peershare/sharing-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file field", err)
		return
	}

	p, err := h.service.Upload(c.Request.Context(), params.ID, identity.UserID(c), header)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

func (h *Handler) ListByItem(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	photos, err := h.service.ListByItem(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPhotoListResponse(photos))
}

// ServeContent streams the original photo bytes.
func (h *Handler) ServeContent(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid photo id", err)
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing left to do.
		return
	}
}

// ServeThumbnail streams the thumbnail, always JPEG.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid photo id", err)
		return
	}

	stream, p, err := h.service.DownloadThumbnail(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

func (h *Handler) Delete(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, "invalid photo id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), params.ID, identity.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
