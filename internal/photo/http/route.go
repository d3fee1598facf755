package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	items := g.Group("/items/:id/photos")
	{
		items.POST("", h.Upload)
		items.GET("", h.ListByItem)
	}

	photos := g.Group("/photos")
	{
		photos.GET("/:id/content", h.ServeContent)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
		photos.DELETE("/:id", h.Delete)
	}
}
