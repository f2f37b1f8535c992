package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laundrymart/laundry-backend/internal/api/handler"
	"github.com/laundrymart/laundry-backend/internal/api/middleware"
	"github.com/laundrymart/laundry-backend/internal/core/domain"
	"github.com/laundrymart/laundry-backend/internal/core/service"
	"github.com/laundrymart/laundry-backend/internal/infrastructure/config"
	"github.com/laundrymart/laundry-backend/internal/infrastructure/crypto"
	mongodb "github.com/laundrymart/laundry-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/laundrymart/laundry-backend/internal/infrastructure/db/redis"
	"github.com/laundrymart/laundry-backend/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin"},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           3600, // preflight cached for one hour
	}))
	e.Use(echoprometheus.NewMiddleware("laundrymart"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := crypto.NewBcryptHasher(0) // 0 falls back to bcrypt.DefaultCost
	tokens := token.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	cache := redisdb.NewProfileCache(rdb)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService, cache, log)
	adminHandler := handler.NewAdminHandler(authService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	authGuard := middleware.Auth(tokens)
	e.GET("/profile", profileHandler.Get, authGuard)
	e.PUT("/profile", profileHandler.Update, authGuard)
	e.GET("/admin/users", adminHandler.ListUsers, authGuard, middleware.RequireRole(domain.RoleAdmin))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
