package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/auth"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/billing"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/config"
	cronrunner "github.com/ndzsps/mentaltradingjournal-sub001/internal/cron"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/db"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/handler"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/logger"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/notify"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/progress"
	gormrepository "github.com/ndzsps/mentaltradingjournal-sub001/internal/repository/gorm"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/service"
)

func main() {
	cfgPath := os.Getenv("MTJ_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("MTJ_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	hub := notify.NewHub()
	// The server-side subscriber just logs; browser clients subscribe over
	// the API responses that carry these messages.
	hub.Subscribe(func(n notify.Notification) {
		logger.Info("notification",
			zap.String("level", string(n.Level)),
			zap.String("title", n.Title),
			zap.String("message", n.Message),
		)
	})

	jwtSigner := auth.JWT{
		Secret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL: cfg.Auth.TokenTTL,
	}

	tracker := &progress.Tracker{Store: store, Logger: logger}

	journalSvc := &service.JournalService{
		Repo:     store,
		Tracker:  tracker,
		Notifier: hub,
		Logger:   logger,
	}
	analyticsSvc := &service.AnalyticsService{Repo: store}
	authSvc := &service.AuthService{Repo: store, JWT: jwtSigner}
	backtestSvc := &service.BacktestService{Repo: store}
	billingSvc := &service.BillingService{
		Repo: store,
		Client: &billing.Client{
			HTTP:    &http.Client{Timeout: cfg.Billing.Timeout},
			BaseURL: cfg.Billing.BaseURL,
			APIKey:  cfg.Billing.APIKey,
		},
		Cfg:      cfg.Billing,
		Notifier: hub,
		Logger:   logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	authHandler := &handler.AuthHandler{Service: authSvc}
	authHandler.Register(engine)

	billingHandler := &handler.BillingHandler{Service: billingSvc}
	billingHandler.RegisterWebhook(engine)

	api := engine.Group("/api")
	api.Use(auth.Middleware(jwtSigner))
	authHandler.RegisterProtected(api)
	(&handler.JournalHandler{Service: journalSvc}).Register(api)
	(&handler.AnalyticsHandler{Service: analyticsSvc}).Register(api)
	(&handler.ProgressHandler{Tracker: tracker, Repo: store}).Register(api)
	(&handler.BacktestHandler{Service: backtestSvc}).Register(api)
	billingHandler.Register(api)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		sweep := &service.StreakSweepService{Repo: store, Logger: logger}
		if _, err := cronRunner.Add(cfg.Cron.StreakSweep, func(ctx context.Context) {
			if err := sweep.RunOnce(ctx); err != nil {
				logger.Warn("streak sweep failed", zap.Error(err))
			}
		}); err != nil {
			logger.Warn("cron register streak sweep failed", zap.Error(err))
		}
		dailyStats := &service.DailyStatsService{Repo: store, Logger: logger}
		if _, err := cronRunner.Add(cfg.Cron.DailyStats, func(ctx context.Context) {
			if err := dailyStats.RunOnce(ctx); err != nil {
				logger.Warn("daily stats rebuild failed", zap.Error(err))
			}
		}); err != nil {
			logger.Warn("cron register daily stats failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
