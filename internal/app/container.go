package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/peershare/sharing-backend/internal/api"
	"github.com/peershare/sharing-backend/internal/booking"
	"github.com/peershare/sharing-backend/internal/comment"
	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/itemrequest"
	"github.com/peershare/sharing-backend/internal/photo"
	"github.com/peershare/sharing-backend/internal/pkg/cache"
	"github.com/peershare/sharing-backend/internal/pkg/storage"
	"github.com/peershare/sharing-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	DBPool         *pgxpool.Pool
	Redis          *redis.Client
	SearchCacheTTL time.Duration
	PhotoStorage   storage.Storage
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Optional search cache, disabled when no Redis is configured.
	var searchCache cache.Cache
	if cfg.Redis != nil {
		searchCache = cache.NewRedisCache(cfg.Redis)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, searchCache, cfg.SearchCacheTTL)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, userService, itemService)

	// Comment module
	commentRepo := comment.NewPgxRepository(cfg.DBPool)
	commentService := comment.NewService(commentRepo, itemService, userService, bookingService)

	// Item request module
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userService, itemService)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, itemService, cfg.PhotoStorage)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Logger:             cfg.Logger,
		UserService:        userService,
		ItemService:        itemService,
		BookingService:     bookingService,
		CommentService:     commentService,
		ItemRequestService: requestService,
		PhotoService:       photoService,
	})

	return &Container{
		Router: router,
	}
}
