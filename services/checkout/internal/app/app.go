package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pin-packs/pkg/cache"
	"pin-packs/pkg/config"
	"pin-packs/pkg/database"
	"pin-packs/pkg/logger"
	"pin-packs/pkg/mail"
	"pin-packs/pkg/middleware"
	"pin-packs/pkg/queue"
	checkoutHTTP "pin-packs/services/checkout/internal/controller/http"
	"pin-packs/services/checkout/internal/repo/broker"
	driftCache "pin-packs/services/checkout/internal/repo/cache"
	"pin-packs/services/checkout/internal/repo/notify"
	"pin-packs/services/checkout/internal/repo/persistent"
	"pin-packs/services/checkout/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pin-packs/services/checkout/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	mailer      *mail.Mailer
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithConfig(logger.Config{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Service: "checkout",
	})

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without rate limiting and drift ledger)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without report queue)", err)
		queueClient = nil
	}

	mailer := mail.NewMailer(cfg)
	if mailer == nil {
		log.Info("SMTP_HOST not set, confirmation mail disabled")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		mailer:      mailer,
	}, nil
}

func (a *App) Router(ctx context.Context) *gin.Engine {
	orderRepo := persistent.NewOrderRepository(a.db)
	counterRepo := persistent.NewPackCounterRepository(a.db)

	reconciler := usecase.NewCounterReconcilerForMode(ctx, counterRepo, a.cfg.DownloadCounterMode, a.log)

	var publishers []usecase.ReportPublisher
	if a.queueClient != nil {
		publishers = append(publishers, broker.NewReportPublisher(a.queueClient))
	}
	if a.redisClient != nil {
		publishers = append(publishers, driftCache.NewDriftLedger(a.redisClient))
	}

	var confirmations usecase.ConfirmationSender
	if a.mailer != nil {
		confirmations = notify.NewConfirmationMailer(a.mailer)
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(
		orderRepo,
		reconciler,
		usecase.NewMultiReportPublisher(publishers...),
		confirmations,
		a.log,
	)

	checkoutHandler := checkoutHTTP.NewCheckoutHandler(checkoutUseCase, a.log)

	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(a.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log))
	}

	{
		api.POST("/orders/fulfill", checkoutHandler.FulfillOrder)
	}

	return r
}

func (a *App) Run() error {
	startCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(startCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Checkout service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down checkout service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Checkout service exited")
	return nil
}
