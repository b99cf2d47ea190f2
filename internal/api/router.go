package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teamtrack/task-tracker/internal/api/handler"
	"github.com/teamtrack/task-tracker/internal/api/middleware"
	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/service"
	mongostore "github.com/teamtrack/task-tracker/internal/infrastructure/db/mongo"
	redisstore "github.com/teamtrack/task-tracker/internal/infrastructure/db/redis"
	"github.com/teamtrack/task-tracker/internal/infrastructure/http/handlers"
	"github.com/teamtrack/task-tracker/pkg/logger"
)

// RouterConfig carries the runtime knobs the router needs beyond its
// storage handles.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	taskRepo := mongostore.NewTaskRepository(db)
	statsCache := redisstore.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, userRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authRequired := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := e.Group("/api", authRequired)

	// Registered before /users/:id so Echo resolves "me" as the static route.
	authed.GET("/users/me", userHandler.Me)

	users := authed.Group("/users", middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// Task routes enforce per-operation rules in the service layer, so no
	// route-level role gate beyond authentication.
	tasks := authed.Group("/tasks")
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	stats := authed.Group("/statistics", middleware.RBAC(domain.RoleManager, domain.RoleAdmin))
	stats.GET("/employees", taskHandler.EmployeeStats)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
