package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webshop/storefront-api/internal/api/handler"
	"github.com/webshop/storefront-api/internal/api/middleware"
	"github.com/webshop/storefront-api/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
// Mongo, Redis, Static and Registerer are optional.
type Dependencies struct {
	Users    ports.UserService
	Auth     ports.AuthService
	Products ports.ProductService
	Static   StaticResponder
	Log      zerolog.Logger

	// Readiness probe targets.
	Mongo *mongo.Database
	Redis *redis.Client

	// Registerer enables HTTP metrics and GET /metrics when non-nil.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	if deps.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "storefront",
			Registerer: deps.Registerer,
		}))
	}

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	if deps.Registerer != nil {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dispatch table ---
	userHandler := handler.NewUserHandler(deps.Users)
	productHandler := handler.NewProductHandler(deps.Products)
	table := newResourceTable(userHandler, productHandler, deps.Auth)
	dispatcher := newDispatcher(table, deps.Users, deps.Static)

	e.Any("/*", dispatcher.Handle)

	return e
}
