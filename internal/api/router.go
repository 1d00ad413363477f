package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wellnesshub/employee-api/internal/api/handler"
	"github.com/wellnesshub/employee-api/internal/api/middleware"
	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
	"github.com/wellnesshub/employee-api/internal/core/service"
	healthhandlers "github.com/wellnesshub/employee-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Repo, JWTSecret and BcryptCost
// are required; Cache and Events may be nil; Mongo and Redis are only used to
// wire the readiness probe and metrics middleware when present.
type Deps struct {
	Repo       ports.UserRepository
	Cache      ports.IdentityCache
	Events     ports.EventSink
	JWTSecret  string
	BcryptCost int
	Log        zerolog.Logger

	Mongo   *mongo.Database
	Redis   *redis.Client
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Dependencies ---
	hasher := service.NewHasher(deps.BcryptCost)
	tokens := service.NewTokenService(deps.JWTSecret)
	resolver := service.NewIdentityResolver(deps.Repo, deps.Cache, deps.Log)
	authService := service.NewAuthService(deps.Repo, tokens, hasher, deps.Events)
	userService := service.NewUserService(deps.Repo, deps.Cache, hasher, deps.Events, deps.Log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("employee_api"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	e.Use(middleware.Authenticate(tokens, resolver))

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Employee routes ---
	employee := middleware.RequireRole(domain.RoleEmployee)
	e.GET("/viewProfile/:id", userHandler.ViewProfile, employee)
	e.DELETE("/deleteProfile/:id", userHandler.DeleteProfile, employee)
	e.PUT("/updateProfile", userHandler.UpdateProfile, employee)

	// --- Admin routes ---
	admin := middleware.RequireRole(domain.RoleAdmin)
	e.POST("/addUser", userHandler.AddUser, admin)
	e.GET("/viewAllUsers", userHandler.ViewAllUsers, admin)
	e.PUT("/updateUserAdmin", userHandler.UpdateUserAdmin, admin)
	e.DELETE("/deleteUserAdmin/:id", userHandler.DeleteUserAdmin, admin)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := healthhandlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	return e
}
