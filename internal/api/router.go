package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/securebase/user-api/internal/api/handler"
	"github.com/securebase/user-api/internal/api/middleware"
	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/service"
	"github.com/securebase/user-api/internal/infrastructure/config"
	mongodb "github.com/securebase/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/securebase/user-api/internal/infrastructure/db/redis"
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
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewCredentialHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, log)
	policy := domain.NewPasswordPolicy(0)

	authService := service.NewAuthService(userRepo, hasher, tokens, policy, log)
	userService := service.NewUserService(userRepo, hasher, policy, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authenticated := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	limiter := middleware.RateLimit(
		redisdb.NewRateLimitStore(rdb),
		cfg.RateLimit.Max,
		cfg.RateLimit.Window,
	)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth", limiter)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	v1.GET("/profile", authHandler.Profile, authenticated)

	users := v1.Group("/users", authenticated)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}
