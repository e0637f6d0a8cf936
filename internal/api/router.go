package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lucamusic/event-platform/docs"
	"github.com/lucamusic/event-platform/internal/api/handler"
	"github.com/lucamusic/event-platform/internal/api/middleware"
	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/service"
	mongodb "github.com/lucamusic/event-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/lucamusic/event-platform/internal/infrastructure/db/redis"
	"github.com/lucamusic/event-platform/pkg/password"
	"github.com/lucamusic/event-platform/pkg/token"
)

// NewUserRouter builds the Echo instance for the user service.
func NewUserRouter(db *mongo.Database, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := newEcho(log, "user_service")

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, password.NewHasher(), issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- User routes ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)
	e.GET("/users/:id", authHandler.GetByID, middleware.RequireRole(authService, domain.RoleAdmin))

	registerOps(e, db, nil)
	return e
}

// NewEventRouter builds the Echo instance for the event catalog service.
// Catalog writes are admin-gated against the shared user store; reads are
// public.
func NewEventRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := newEcho(log, "event_service")

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gate := service.NewAuthService(userRepo, password.NewHasher(), issuer, log)

	eventRepo := mongodb.NewEventRepository(db)
	styleCache := redisdb.NewStyleCache(rdb)
	eventService := service.NewEventService(eventRepo, styleCache, log)
	eventHandler := handler.NewEventHandler(eventService)

	adminOnly := middleware.RequireRole(gate, domain.RoleAdmin)

	// --- Event routes ---
	e.POST("/events", eventHandler.Create, adminOnly)
	e.GET("/events/:id", eventHandler.GetByID)
	e.GET("/events/music-style/:style", eventHandler.GetByMusicStyle)
	e.PUT("/events/:id", eventHandler.Update, adminOnly)
	e.DELETE("/events/:id", eventHandler.Delete, adminOnly)

	registerOps(e, db, rdb)
	return e
}

func newEcho(log zerolog.Logger, subsystem string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(subsystem))

	return e
}

// registerOps wires the operational endpoints shared by both services.
func registerOps(e *echo.Echo, db *mongo.Database, rdb *redis.Client) {
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
