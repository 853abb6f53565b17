package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/config"
	"github.com/george-bobby/prepify-interview-sub001/internal/credits"
	"github.com/george-bobby/prepify-interview-sub001/internal/handlers"
	"github.com/george-bobby/prepify-interview-sub001/internal/jobs"
	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	_ "github.com/george-bobby/prepify-interview-sub001/internal/llm/gemini"
	"github.com/george-bobby/prepify-interview-sub001/internal/metrics"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/routers"
	"github.com/george-bobby/prepify-interview-sub001/internal/search"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
	"github.com/george-bobby/prepify-interview-sub001/internal/workflow"
)

// initDatabase opens the PostgreSQL connection and migrates the schema.
// TranslateError turns driver duplicate-key errors into gorm.ErrDuplicatedKey,
// which the share repository relies on.
func initDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Interview{},
		&models.InterviewResponse{},
		&models.Feedback{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.Share{},
		&models.Notification{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	utils.InitLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded", zap.String("provider", cfg.Provider))

	db, err := initDatabase(cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	appCache := cache.NewCache(rdb)

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// repositories and domain services
	users := &repositories.UserRepository{DB: db}
	interviews := &repositories.InterviewRepository{DB: db}
	feedback := &repositories.FeedbackRepository{DB: db}
	posts := &repositories.PostRepository{DB: db}
	comments := &repositories.CommentRepository{DB: db}
	shares := &repositories.ShareRepository{DB: db}
	notifications := &repositories.NotificationRepository{DB: db}

	ledger := credits.NewLedger(users, cfg.MonthlyResumeCredits)
	verifier := credits.NewSubscriptionVerifier(cfg.PaymentKeySecret)
	interviewWorkflow := workflow.New(aiProvider, interviews, feedback, ledger, appCache, logger)

	// handlers
	authHandler := handlers.NewAuthHandler(users, appCache, cfg.JWTSecret, logger)
	interviewHandler := handlers.NewInterviewHandler(interviewWorkflow, interviews, feedback, appCache, logger)
	creditHandler := handlers.NewCreditHandler(ledger, verifier, logger)
	resumeHandler := handlers.NewResumeHandler(aiProvider, ledger, logger)
	postHandler := handlers.NewPostHandler(posts, shares, logger)
	commentHandler := handlers.NewCommentHandler(comments, logger)
	notificationHandler := handlers.NewNotificationHandler(notifications, logger)
	searchHandler := handlers.NewSearchHandler(
		search.NewJobSearchClient(cfg.JobSearchAPIKey),
		search.NewNewsClient(cfg.NewsAPIKey),
		logger,
	)
	healthHandler := handlers.NewHealthHandler(db, appCache, aiProvider)

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	auth := middleware.RequireAuth(cfg.JWTSecret, appCache)

	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler, auth)
	routers.InterviewRoutes(router, interviewHandler, auth)
	routers.CreditRoutes(router, creditHandler, resumeHandler, auth)
	routers.SocialRoutes(router, postHandler, commentHandler, auth)
	routers.NotificationRoutes(router, notificationHandler, auth)
	routers.SearchRoutes(router, searchHandler, auth)
	router.Handle("/metrics", metrics.Handler())

	// background workers
	subscriberCtx, cancelSubscriber := context.WithCancel(context.Background())
	subscriber := workflow.NewNotificationSubscriber(appCache, notifications, logger)
	go subscriber.Run(subscriberCtx)

	cleanupJob := jobs.NewNotificationCleanupJob(notifications, &jobs.CleanupConfig{
		Schedule:      cfg.CleanupSchedule,
		RetentionDays: cfg.NotificationRetentionDays,
	}, logger)
	if err := cleanupJob.Start(); err != nil {
		logger.Error("Failed to start notification cleanup job", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Shutting down...")

	cleanupJob.Stop()
	cancelSubscriber()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Warn("redis close failed", zap.Error(err))
	}

	logger.Info("Server exited")
}
