// cmd/cluster-gateway-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jack0rich/BigdataServer/internal/api/rest/middleware"
	v1 "github.com/jack0rich/BigdataServer/internal/api/rest/v1"
	"github.com/jack0rich/BigdataServer/internal/app"
	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/domain/cluster"
	"github.com/jack0rich/BigdataServer/internal/domain/hdfs"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/connector"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/cryptography"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/persistence"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/persistence/models"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

const appVersion = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Wait for the container engine before accepting traffic
	if err := probeContainerEngine(deps.services.management, log); err != nil {
		log.Warn("Container engine not reachable at startup: ", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
	tokens   users.TokenIssuer
}

type appServices struct {
	files      hdfs.FileService
	tracking   mlflow.TrackingService
	workflows  airflow.WorkflowService
	management cluster.ManagementService
	users      users.UserService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	// Initialize credential primitives
	cipher, err := cryptography.NewAESKeyCipher(cfg.Auth.EncryptionKey, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key cipher: %w", err)
	}

	tokens, err := cryptography.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Initialize backend connectors
	hdfsConnector, err := connector.NewWebHDFSConnector(&cfg.HDFS, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhdfs connector: %w", err)
	}

	mlflowConnector, err := connector.NewMLflowConnector(&cfg.MLflow, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mlflow connector: %w", err)
	}

	airflowConnector, err := connector.NewAirflowConnector(&cfg.Airflow, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create airflow connector: %w", err)
	}

	dockerConnector, err := connector.NewDockerConnector(&cfg.Docker, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker connector: %w", err)
	}

	log.Info("Backend connectors initialized successfully")

	// Initialize services
	services, err := initializeApplicationServices(cfg, hdfsConnector, mlflowConnector, airflowConnector, dockerConnector, userRepo, cipher, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
		tokens:   tokens,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	hdfsConnector hdfs.Connector,
	mlflowConnector mlflow.Connector,
	airflowConnector airflow.Connector,
	dockerConnector cluster.Connector,
	userRepo users.UserRepository,
	cipher users.APIKeyCipher,
	tokens users.TokenIssuer,
	log logger.Logger,
) (*appServices, error) {
	fileService, err := app.NewHDFSFileService(hdfsConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file service: %w", err)
	}

	trackingService, err := app.NewMLflowTrackingService(mlflowConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking service: %w", err)
	}

	workflowService, err := app.NewAirflowWorkflowService(airflowConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow service: %w", err)
	}

	managementService, err := app.NewClusterManagementService(dockerConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create management service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, cryptography.NewBcryptHasher(), cipher, tokens, cfg.Auth.KeyCacheTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		files:      fileService,
		tracking:   trackingService,
		workflows:  workflowService,
		management: managementService,
		users:      userService,
	}, nil
}

// probeContainerEngine retries the engine ping so a slow docker daemon does
// not fail the whole gateway at boot.
func probeContainerEngine(management cluster.ManagementService, log logger.Logger) error {
	return retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return management.Ping(ctx)
		},
		retry.Attempts(5),
		retry.Delay(2*time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("Container engine ping attempt ", n+1, " failed: ", err)
		}),
	)
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	allowOrigins := cfg.CORSOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", cfg.Auth.Header()},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.NewAccessLog(log))
	r.Use(middleware.NewMetrics())

	// Setup API routes
	apiKeyAuth := middleware.NewAPIKeyAuth(deps.services.users, cfg.Auth.Header(), log)
	bearerAuth := middleware.NewBearerAuth(deps.tokens, log)
	v1.SetupRoutes(r,
		deps.services.files,
		deps.services.tracking,
		deps.services.workflows,
		deps.services.management,
		deps.services.users,
		apiKeyAuth,
		bearerAuth,
		appVersion,
	)

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve OpenAPI spec (replaces Swagger)
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/cluster-gateway.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
