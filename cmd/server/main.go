package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/config"
	"github.com/localnerve/reviewdb/internal/database"
	"github.com/localnerve/reviewdb/internal/handlers"
	"github.com/localnerve/reviewdb/internal/middleware"

	_ "github.com/localnerve/reviewdb/docs/api" // Swagger docs
)

// @title ReviewDB API
// @version 1.0.0
// @description Go Fiber business review service with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/reviewdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name reviewdb_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Photo blob sink
	photos, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize photo store: %v", err)
	}

	// In-memory sessions
	sessions := middleware.NewSessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("reviewdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	appHandler := &handlers.AppHandler{DB: db, Cfg: cfg, Photos: photos}
	businessHandler := &handlers.BusinessHandler{DB: db, Photos: photos}
	reviewHandler := &handlers.ReviewHandler{DB: db}
	userHandler := &handlers.UserHandler{
		DB:         db,
		Sessions:   sessions,
		BcryptCost: cfg.BcryptCost,
	}
	photoHandler := &handlers.PhotoHandler{DB: db, Photos: photos}

	// Health endpoint outside /api, for orchestrators
	app.Get("/health", appHandler.Health)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Heartbeat and payload
	api.Get("/", appHandler.Heartbeat)
	api.Get("/payload", appHandler.Payload)

	// Business routes
	api.Get("/business", businessHandler.GetBusinesses)
	api.Get("/business/:id", businessHandler.GetBusiness)
	api.Post("/business", businessHandler.AddBusiness)
	api.Put("/business/:id", businessHandler.EditBusiness)
	api.Delete("/business/:id", businessHandler.DeleteBusiness)

	// Review routes
	api.Get("/review", reviewHandler.GetReviews)
	api.Get("/review/:id", reviewHandler.GetReview)
	api.Post("/review", reviewHandler.AddReview)
	api.Put("/review/:id", reviewHandler.EditReview)
	api.Delete("/review/:id", reviewHandler.DeleteReview)

	// Photo routes
	api.Post("/photo/:businessId", photoHandler.UploadPhoto)

	// User and session routes
	api.Post("/user", userHandler.AddUser)
	api.Post("/login", userHandler.Login)
	api.Post("/logout", userHandler.Logout)
	api.Get("/user/me", middleware.AuthUser(sessions), userHandler.Me)
	api.Get("/user/:id", userHandler.GetUser)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// newBlobStore builds the configured photo sink.
func newBlobStore(cfg *config.Config) (blob.Store, error) {
	switch cfg.PhotoDriver {
	case "s3":
		return blob.NewS3Store(context.Background(), blob.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PathStyle:       cfg.S3PathStyle,
		})
	default:
		return blob.NewFSStore(cfg.PhotoDir)
	}
}
