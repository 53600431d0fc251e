package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/notewise/notes-api/docs"
	"github.com/notewise/notes-api/internal/api/handler"
	"github.com/notewise/notes-api/internal/api/middleware"
	"github.com/notewise/notes-api/internal/core/service"
	"github.com/notewise/notes-api/internal/core/token"
	"github.com/notewise/notes-api/internal/infrastructure/config"
	mongodb "github.com/notewise/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/notewise/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, issuer, throttle, log)
	noteService := service.NewNoteService(noteRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	v1.GET("/health", healthHandler.Liveness)
	v1.GET("/health/ready", readinessHandler.Readiness)

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Note routes (bearer token required) ---
	notes := v1.Group("/notes", middleware.Auth(issuer))
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.PUT("/:note_id", noteHandler.Update)
	notes.DELETE("/:note_id", noteHandler.Delete)

	return e
}
