package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/peershare/sharing-backend/internal/booking"
	bookingHttp "github.com/peershare/sharing-backend/internal/booking/http"
	"github.com/peershare/sharing-backend/internal/comment"
	"github.com/peershare/sharing-backend/internal/identity"
	"github.com/peershare/sharing-backend/internal/item"
	itemHttp "github.com/peershare/sharing-backend/internal/item/http"
	"github.com/peershare/sharing-backend/internal/itemrequest"
	requestHttp "github.com/peershare/sharing-backend/internal/itemrequest/http"
	"github.com/peershare/sharing-backend/internal/logging"
	"github.com/peershare/sharing-backend/internal/metrics"
	"github.com/peershare/sharing-backend/internal/photo"
	photoHttp "github.com/peershare/sharing-backend/internal/photo/http"
	"github.com/peershare/sharing-backend/internal/user"
	userHttp "github.com/peershare/sharing-backend/internal/user/http"
)

// Config carries everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       zerolog.Logger

	UserService        user.Service
	ItemService        item.Service
	BookingService     booking.Service
	CommentService     comment.Service
	ItemRequestService itemrequest.Service
	PhotoService       photo.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, logging, metrics, identity) and registers
// routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(cfg.Logger))

	metrics.Register()
	r.Use(metrics.Middleware())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8080", // gateway
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Handlers per module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService, cfg.CommentService, cfg.BookingService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.ItemRequestService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	// User management is admin-facing and carries no caller identity.
	root := r.Group("")
	userHttp.RegisterRoutes(root, userHandler)

	// Everything else sits behind the gateway identity header.
	authed := r.Group("")
	authed.Use(identity.Required())
	{
		itemHttp.RegisterRoutes(authed, itemHandler)
		bookingHttp.RegisterRoutes(authed, bookingHandler)
		requestHttp.RegisterRoutes(authed, requestHandler)
		photoHttp.RegisterRoutes(authed, photoHandler)
	}

	return r
}
