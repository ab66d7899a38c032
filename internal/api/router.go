package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/api/handler"
	"github.com/KiwiRant/Kitchen-database/internal/api/middleware"
	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
	"github.com/KiwiRant/Kitchen-database/internal/core/service"
	"github.com/KiwiRant/Kitchen-database/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The user repository is built by the caller because it carries the resolved
// users-table metadata loaded at startup.
func NewRouter(log zerolog.Logger, db postgres.PgxPool, users ports.UserRepository, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kitchensales"))

	// --- Dependencies ---
	clientRepo := postgres.NewClientRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	quoteRepo := postgres.NewQuoteRepository(db)

	authService := service.NewAuthService(users, jwtSecret, 0, log)
	clientService := service.NewClientService(clientRepo, log)
	saleService := service.NewSaleService(saleRepo, clientRepo, log)
	quoteService := service.NewQuoteService(quoteRepo, saleRepo, clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	saleHandler := handler.NewSaleHandler(saleService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	secured := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/add-user", authHandler.AddUser, secured, middleware.RBAC(domain.RoleAdmin))

	// --- Business routes (authenticated) ---
	api := e.Group("/api", secured)
	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)
	api.GET("/sales", saleHandler.List)
	api.POST("/sales", saleHandler.Create)
	api.GET("/quotes", quoteHandler.List)
	api.POST("/quotes", quoteHandler.Create)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
