package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storekit/catalog-api/docs"
	"github.com/storekit/catalog-api/internal/api/handler"
	"github.com/storekit/catalog-api/internal/api/middleware"
	"github.com/storekit/catalog-api/internal/core/domain"
	"github.com/storekit/catalog-api/internal/core/service"
	"github.com/storekit/catalog-api/internal/infrastructure/config"
	mongodb "github.com/storekit/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storekit/catalog-api/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.TokenTTL())
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- User management (admin only) ---
	users := e.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Products ---
	e.GET("/products", productHandler.List)
	e.GET("/products/search/:name", productHandler.Search)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, authRequired)
	e.PUT("/products/:id", productHandler.Update, authRequired)
	e.PATCH("/products/:id", productHandler.Patch, authRequired)
	e.DELETE("/products/:id", productHandler.Delete, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
