package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/facades"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/handlers"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/jwt"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/middlewares"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/repositories"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"

	_ "github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AI-powered skin outbreak tracker API
// @version 1.0.0
// @description Backend for photo-based skin analysis, lifestyle tracking, habit insights and skincare plan generation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		visionEndpoint, visionModel, visionToken, visionTimeoutSecond,
		searchEndpoint, searchAPIKey, searchTimeoutSecond,
		s3Bucket, s3Region,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		visionEndpoint, visionModel, visionToken, visionTimeoutSecond,
		searchEndpoint, searchAPIKey, searchTimeoutSecond,
		s3Bucket, s3Region,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, upstream, storage, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	visionEndpoint, visionModel, visionToken string, visionTimeoutSecond int,
	searchEndpoint, searchAPIKey string, searchTimeoutSecond int,
	s3Bucket, s3Region string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "skintracker")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("INSIGHT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "skintracker.events")

	// Vision model config
	visionEndpoint = getEnv("VISION_ENDPOINT", "https://api-inference.huggingface.co")
	visionModel = getEnv("VISION_MODEL", "imfarzanansari/skintelligent-acne")
	visionToken = getEnv("VISION_TOKEN", "")
	if visionTimeoutSecond, err = strconv.Atoi(getEnv("VISION_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// Product search config
	searchEndpoint = getEnv("SEARCH_ENDPOINT", "https://serpapi.com")
	searchAPIKey = getEnv("SEARCH_API_KEY", "")
	if searchTimeoutSecond, err = strconv.Atoi(getEnv("SEARCH_TIMEOUT_SECOND", "15")); err != nil {
		return
	}

	// S3 photo store config
	s3Bucket = getEnv("S3_BUCKET", "skintracker-photos")
	s3Region = getEnv("S3_REGION", "us-east-1")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, upstream facades, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	visionEndpoint, visionModel, visionToken string, visionTimeoutSecond int,
	searchEndpoint, searchAPIKey string, searchTimeoutSecond int,
	s3Bucket, s3Region string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka event writer. Publishing is best effort and optional.
	var eventWriter services.EventWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	}

	// S3 photo store
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s3Region))
	if err != nil {
		logger.Log.Errorw("failed to load AWS config", "error", err)
		return err
	}
	s3Client := s3.NewFromConfig(awsCfg)

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize upstream facades
	visionFacade := facades.NewVisionHTTPFacade(visionEndpoint, visionToken, visionModel,
		time.Duration(visionTimeoutSecond)*time.Second)
	searchFacade := facades.NewProductSearchHTTPFacade(searchEndpoint, searchAPIKey,
		time.Duration(searchTimeoutSecond)*time.Second)
	photoStore := facades.NewPhotoStoreS3Facade(s3Client, s3Bucket)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	entryWriteRepo := repositories.NewEntryWriteRepository(db)
	entryReadRepo := repositories.NewEntryReadRepository(db)
	assessmentWriteRepo := repositories.NewAssessmentWriteRepository(db)
	assessmentReadRepo := repositories.NewAssessmentReadRepository(db)
	planWriteRepo := repositories.NewPlanWriteRepository(db)
	planReadRepo := repositories.NewPlanReadRepository(db)
	insightCacheRepo := repositories.NewInsightCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	trackerService := services.NewTrackerService(userReadRepo, entryWriteRepo, entryReadRepo, insightCacheRepo)
	insightService := services.NewInsightService(userReadRepo, entryReadRepo, assessmentReadRepo, insightCacheRepo)
	detectService := services.NewDetectService(userReadRepo, visionFacade, photoStore,
		assessmentWriteRepo, insightCacheRepo, eventWriter)
	planService := services.NewPlanService(userReadRepo, insightService, assessmentReadRepo,
		searchFacade, planWriteRepo, planReadRepo, eventWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/detect/", handlers.NewDetectHandler(detectService))
		r.Get("/timeseries/{user_id}", handlers.NewGetTimeseriesHandler(trackerService))
		r.Post("/timeseries/", handlers.NewSaveEntryHandler(trackerService))
		r.Get("/profile/{user_id}", handlers.NewGetProfileHandler(profileService))
		r.Post("/profile/", handlers.NewSaveProfileHandler(profileService))
		r.Post("/skin-plan/generate", handlers.NewGeneratePlanHandler(planService))
		r.Get("/skin-plan/{user_id}", handlers.NewPlanHistoryHandler(planService))
		r.Get("/insights/{user_id}", handlers.NewGetInsightsHandler(insightService))

		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Get("/me", handlers.NewMeHandler(profileService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
