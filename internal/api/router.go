package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/booknest/booknest-api/internal/api/handler"
	"github.com/booknest/booknest-api/internal/api/middleware"
	"github.com/booknest/booknest-api/internal/core/ports"
	"github.com/booknest/booknest-api/internal/core/service"
	mongodb "github.com/booknest/booknest-api/internal/infrastructure/db/mongo"
	redisdb "github.com/booknest/booknest-api/internal/infrastructure/db/redis"
)

// Deps carries the external collaborators the router wires together.
type Deps struct {
	Mongo           *mongo.Database
	Redis           *redis.Client
	Tokens          ports.TokenService
	CatalogClient   ports.CatalogClient
	CatalogCacheTTL time.Duration
	Log             zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booknest"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	authService := service.NewAuthService(userRepo, deps.Tokens, deps.Log)
	libraryService := service.NewLibraryService(userRepo, deps.Log)

	searchCache := redisdb.NewSearchCache(deps.Redis, deps.CatalogCacheTTL)
	catalogService := service.NewCatalogService(deps.CatalogClient, searchCache, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// Every /v1 route runs the authenticator; it populates the request identity
	// and fails open to anonymous, leaving enforcement to the services.
	v1 := e.Group("/v1", middleware.Auth(deps.Tokens))

	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	v1.GET("/me", libraryHandler.Me)
	v1.POST("/me/books", libraryHandler.SaveBook)
	v1.DELETE("/me/books/:book_id", libraryHandler.RemoveBook)
	v1.GET("/users/:username", libraryHandler.GetUser)

	v1.GET("/catalog/search", catalogHandler.Search)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
