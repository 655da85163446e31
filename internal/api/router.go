package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/herovault/hero-api/internal/api/handler"
	"github.com/herovault/hero-api/internal/api/middleware"
	"github.com/herovault/hero-api/internal/core/ports"
	httphandlers "github.com/herovault/hero-api/internal/infrastructure/http/handlers"
)

// Deps carries the constructed collaborators the router wires together. The
// store behind the services may be Postgres or the in-memory fallback; the
// router does not care which.
type Deps struct {
	HeroService ports.HeroService
	AuthService ports.AuthService
	Verifier    ports.TokenVerifier
	Store       httphandlers.Pinger
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("herovault"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	heroHandler := handler.NewHeroHandler(deps.HeroService)
	session := middleware.Session(deps.Verifier, deps.Logger)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Hero resource (session required) ---
	heroes := e.Group("/api/heroes", session)
	heroes.GET("", heroHandler.List)
	heroes.POST("", heroHandler.Create)
	heroes.PUT("", heroHandler.Update)
	heroes.DELETE("", heroHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	readyHandler := httphandlers.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
