package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"article-workflow/internal/config"
	"article-workflow/internal/handler"
	"article-workflow/internal/infrastructure/database"
	"article-workflow/internal/logger"
	"article-workflow/internal/metrics"
	"article-workflow/internal/middleware"
	"article-workflow/internal/notifier"
	"article-workflow/internal/repository"
	"article-workflow/internal/roles"
	"article-workflow/internal/service"
	"article-workflow/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Open the article store
	store, closeStore := openStore(cfg)
	defer closeStore()

	// Load the role catalog
	catalog, err := roles.Load(cfg.RolesFile)
	if err != nil {
		logger.Fatal("Failed to load role catalog",
			slog.String("path", cfg.RolesFile),
			slog.String("error", err.Error()))
	}
	for _, r := range catalog.Roles() {
		logger.Info("Role configured",
			slog.String("role", r.Name),
			slog.String("weight", r.Weight.StringFixed(2)))
	}

	// State change subscribers
	log := logger.Default()
	stateNotifier := notifier.New(log,
		notifier.NewAuditLogObserver(log),
		notifier.NewEmailNotificationObserver(notifier.NewLogMailer(log)),
		notifier.NewMetricsObserver(),
	)

	// Initialize services
	v := validator.NewValidator()
	articleService := service.NewArticleService(store, stateNotifier, v)
	approvalService := service.NewApprovalService(store, stateNotifier, v, cfg.VoteMaxAttempts, cfg.VoteRetryBackoff)
	exportService := service.NewExportService(store)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	approvalHandler := handler.NewApprovalHandler(approvalService, catalog)
	exportHandler := handler.NewExportHandler(exportService)
	healthHandler := handler.NewHealthHandler(store, cfg.StoreDriver)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/pending", articleHandler.ListPending)
			articles.GET("/export", exportHandler.StreamArticles)
			articles.GET("/author/:authorId", articleHandler.ListByAuthor)
			articles.GET("/:id", articleHandler.Get)

			authored := articles.Group("", middleware.RequireIdentity())
			authored.POST("", articleHandler.Create)
			authored.PUT("/:id", articleHandler.Update)
			authored.DELETE("/:id", articleHandler.Delete)
			authored.PUT("/:id/send-to-review", articleHandler.SendToReview)
		}

		approvals := v1.Group("/approvals")
		{
			approvals.POST("", middleware.RequireIdentity(), approvalHandler.SubmitVote)
			approvals.GET("/article/:articleId", approvalHandler.History)
			approvals.GET("/article/:articleId/summary", approvalHandler.Tally)
			approvals.GET("/article/:articleId/export", exportHandler.StreamHistory)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// openStore builds the configured store and returns a function releasing it.
func openStore(cfg *config.Config) (repository.Store, func()) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store, data will not survive a restart")
		return repository.NewMemoryStore(), func() {}
	}

	poolCfg := cfg.Pool()

	if cfg.RunMigrations {
		if err := database.Migrate(cfg.MigrationsDir, poolCfg.URL()); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("dir", cfg.MigrationsDir),
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	ctx := context.Background()
	pool, err := database.NewPostgres(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	metrics.LogHealthCheckMetrics(ctx, pool)

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)

	return repository.NewPostgresStore(pool), func() {
		poolStatsCollector.Stop()
		pool.Close()
	}
}
