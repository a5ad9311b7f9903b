package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projectpulse/project-management/internal/api/handler"
	"github.com/projectpulse/project-management/internal/api/middleware"
	"github.com/projectpulse/project-management/internal/core/service"
	"github.com/projectpulse/project-management/internal/infrastructure/config"
	mongodb "github.com/projectpulse/project-management/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// It is the composition root: repositories, services, and middleware are
// constructed here from the injected database and configuration, with no
// package-level singletons.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("16K"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("projectpulse"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJWTIssuer(
		cfg.Token.AccessSecret,
		cfg.Token.RefreshSecret,
		cfg.Token.AccessTTL,
		cfg.Token.RefreshTTL,
	)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Token.AccessTTL, cfg.Token.RefreshTTL)
	projectHandler := handler.NewProjectHandler(projectService)
	guard := middleware.Auth(tokens, userRepo)

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/users/register", authHandler.Register)
	v1.POST("/users/login", authHandler.Login)
	v1.POST("/project/createproject", projectHandler.Create, guard)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
