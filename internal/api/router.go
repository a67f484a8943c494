package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/photographerlagbe/marketplace-api/docs"
	"github.com/photographerlagbe/marketplace-api/internal/api/handler"
	"github.com/photographerlagbe/marketplace-api/internal/api/middleware"
	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/service"
	"github.com/photographerlagbe/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/photographerlagbe/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/photographerlagbe/marketplace-api/internal/infrastructure/db/redis"
	"github.com/photographerlagbe/marketplace-api/internal/infrastructure/storage"
	"github.com/photographerlagbe/marketplace-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, media *storage.MinIOStore) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	limiter := redisdb.NewLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewPhotographerRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	profileService := service.NewPhotographerService(profileRepo, userRepo, log)
	directoryService := service.NewDirectoryService(profileRepo, userRepo, log)
	mediaService := service.NewMediaService(media, profileService, userRepo, log)
	userService := service.NewUserService(userRepo, profileRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, mediaService)
	photographerHandler := handler.NewPhotographerHandler(profileService, mediaService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	requireAuth := middleware.Auth(authService)
	requirePhotographer := middleware.RequireRole(domain.RolePhotographer)
	requireAnyRole := middleware.RequireRole(domain.RoleClient, domain.RolePhotographer)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Self-service user routes ---
	users := apiGroup.Group("/users", requireAuth, requireAnyRole)
	users.GET("/me", userHandler.GetMe)
	users.PUT("/me", userHandler.UpdateMe)
	users.POST("/me/picture", userHandler.UploadPicture)

	// --- Photographer-role routes ---
	photographers := apiGroup.Group("/photographers")
	own := photographers.Group("", requireAuth, requirePhotographer)
	own.POST("/profile", photographerHandler.CreateProfile)
	own.GET("/profile", photographerHandler.GetProfile)
	own.PUT("/profile", photographerHandler.UpdateProfile)
	own.POST("/upload-work", photographerHandler.UploadWork)
	own.DELETE("/portfolio/:itemId", photographerHandler.RemovePortfolioItem)

	// --- Public directory ---
	photographers.GET("", directoryHandler.List)
	photographers.GET("/:id", directoryHandler.GetByID)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, media)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
