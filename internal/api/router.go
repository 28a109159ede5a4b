package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/painless-lms/lms-api/internal/api/handler"
	"github.com/painless-lms/lms-api/internal/api/middleware"
	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/service"
	mongodb "github.com/painless-lms/lms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/painless-lms/lms-api/internal/infrastructure/db/redis"
	"github.com/painless-lms/lms-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("lms"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	lessonRepo := mongodb.NewLessonRepository(db)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Throttle.Limit, cfg.Throttle.Window)
	}

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	adminService := service.NewAdminService(userRepo, log)
	courseService := service.NewCourseService(courseRepo, lessonRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	courseHandler := handler.NewCourseHandler(courseService)

	protect := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Admin routes ---
	admin := e.Group("/admin", protect, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/pending", adminHandler.ListPending)
	admin.GET("/all", adminHandler.ListAll)
	admin.PUT("/:id", adminHandler.UpdateStatus)
	admin.DELETE("/:id", adminHandler.DeleteAccount)

	// --- Course routes ---
	e.GET("/courses", courseHandler.ListPublished)
	e.GET("/courses/:id", courseHandler.GetDetails)
	// Deletion is guarded by the owner-or-admin policy in the service, so it
	// only needs authentication here.
	e.DELETE("/courses/:id", courseHandler.Delete, protect)

	management := e.Group("/courses/management", protect, middleware.RBAC(domain.RoleInstructor))
	management.POST("", courseHandler.Create)
	management.GET("/my", courseHandler.ListMine)

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
