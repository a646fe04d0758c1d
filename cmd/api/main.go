package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/centralcontact/forms-api/docs"
	"github.com/centralcontact/forms-api/internal/api"
	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/middleware"
	"github.com/centralcontact/forms-api/internal/repository/composite"
	"github.com/centralcontact/forms-api/internal/service"
	"github.com/centralcontact/forms-api/internal/service/pubsub"
	"github.com/centralcontact/forms-api/internal/service/queue"
	"github.com/centralcontact/forms-api/pkg/logger"
)

// @title           Central Contact Forms API
// @version         1.0
// @description     Multi-tenant form submission backend.

// @host      localhost:10000
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	if err := dbConnections.Writer.AutoMigrate(
		&domain.Website{},
		&domain.Form{},
		&domain.Message{},
	); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize services
	submissionService := service.NewSubmissionService(repo, sqsService)
	websiteService := service.NewWebsiteService(repo)
	formService := service.NewFormService(repo, sqsService)
	messageService := service.NewMessageService(repo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		submissionService,
		websiteService,
		formService,
		messageService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
	)

	// Wire up WebSocket broadcaster for the live message feed
	submissionService.SetLiveFeedBroadcaster(server.GetWebSocketHandler())

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Central Contact Forms API"
	docs.SwaggerInfo.Description = "Multi-tenant form submission backend"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public submission endpoint lives under /api, the dashboard under
	// /v1. They cannot share the /api prefix because the submission
	// path's uuid segment would clash with static dashboard routes.
	publicGroup := router.Group("/api")
	server.SetupPublicRoutes(publicGroup)

	dashboardGroup := router.Group("/v1")
	server.SetupDashboardRoutes(dashboardGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
