package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/retours-express/returns-platform/internal/api/handler"
	"github.com/retours-express/returns-platform/internal/api/middleware"
	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
	"github.com/retours-express/returns-platform/internal/infrastructure/http/handlers"
	"github.com/retours-express/returns-platform/pkg/logger"
)

// Dependencies collects everything the router needs. Mongo and Redis are
// nil when the in-memory store is active; the readiness probe reports
// them accordingly.
type Dependencies struct {
	ReturnService ports.ReturnService
	AuthService   ports.AuthService
	EventService  ports.EventService
	Catalog       ports.CatalogRepository
	Dispatcher    handler.EventDispatcher
	Mongo         *mongo.Database
	Redis         *redis.Client
	JWTSecret     string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("returns_http"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	returnHandler := handler.NewReturnHandler(deps.ReturnService)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	eventHandler := handler.NewEventHandler(deps.Dispatcher, deps.EventService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	// Catalog reference data, readable by both roles.
	v1.GET("/products", catalogHandler.ListProducts, middleware.RequireRole(domain.RoleAdmin, domain.RoleClient))
	v1.GET("/orders", catalogHandler.ListOrders, middleware.RequireRole(domain.RoleAdmin, domain.RoleClient))

	// Return lifecycle. Clients create, consult and rate their own
	// requests; only operators advance the status.
	v1.POST("/returns", returnHandler.Create, middleware.RequireRole(domain.RoleClient))
	v1.GET("/returns", returnHandler.List, middleware.RequireRole(domain.RoleAdmin, domain.RoleClient))
	v1.GET("/returns/:id", returnHandler.Get, middleware.RequireRole(domain.RoleAdmin, domain.RoleClient))
	v1.PATCH("/returns/:id/status", returnHandler.Transition, middleware.RequireRole(domain.RoleAdmin))
	v1.POST("/returns/:id/satisfaction", returnHandler.Rate, middleware.RequireRole(domain.RoleClient))

	// Operator dashboard.
	v1.GET("/dashboard/stats", returnHandler.Stats, middleware.RequireRole(domain.RoleAdmin))

	// Carrier event ingestion (webhook-style, admin credentials) and the
	// audit trail read side, scoped to the owner for clients.
	v1.POST("/events", eventHandler.Receive, middleware.RequireRole(domain.RoleAdmin))
	v1.POST("/events/batch", eventHandler.ReceiveBatch, middleware.RequireRole(domain.RoleAdmin))
	v1.GET("/events/:id", eventHandler.History, middleware.RequireRole(domain.RoleAdmin, domain.RoleClient))

	return e
}
