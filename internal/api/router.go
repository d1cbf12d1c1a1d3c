package api

import (
	"crypto/subtle"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumopress/user-directory/internal/api/handler"
	"github.com/lumopress/user-directory/internal/api/middleware"
	"github.com/lumopress/user-directory/internal/core/ports"
)

// RouterConfig carries everything the router needs; services are
// constructed by the caller so they can be substituted in tests.
type RouterConfig struct {
	DB           *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	EventsSecret string

	Auth       ports.AuthService
	Directory  ports.DirectoryService
	Comments   ports.CommentService
	Dispatcher handler.EventDispatcher
	Pages      handler.PageFetcher

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	adminHandler := handler.NewAdminHandler(cfg.Directory)
	eventHandler := handler.NewEventHandler(cfg.Dispatcher)
	commentHandler := handler.NewCommentHandler(cfg.Comments)
	pageHandler := handler.NewPageHandler(cfg.Pages)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Lifecycle events (trusted source, shared-secret verified) ---
	events := e.Group("/v1/events")
	events.Use(echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
		KeyLookup: "header:X-Events-Secret",
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.EventsSecret)) == 1, nil
		},
	}))
	events.POST("/accounts", eventHandler.Receive)

	// --- Admin command gateway ---
	admin := e.Group("/v1/admin", middleware.Auth(cfg.JWTSecret), middleware.RBAC("admin"))
	admin.GET("/users", adminHandler.List)
	admin.PUT("/users/:uid/role", adminHandler.SetRole)
	admin.PUT("/users/:uid/status", adminHandler.ToggleStatus)
	admin.DELETE("/users/:uid", adminHandler.Delete)

	// --- Public comment widget backend ---
	e.GET("/v1/comments", commentHandler.List)
	e.POST("/v1/comments", commentHandler.Submit)

	// --- Cache-first page assets ---
	e.GET("/v1/pages/:key", pageHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
