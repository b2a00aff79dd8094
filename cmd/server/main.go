package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/identity"
	monitoringapp "github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/monitoring"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/auth"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/config"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/logger"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/persistence"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/storage"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/telemetry"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/handler"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/middleware"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Employee Monitoring API
//	@version		1.0
//	@description	Multi-tenant employee activity monitoring backend

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting monitoring backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection with the zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist: Redis when configured, in-memory otherwise.
	// The in-memory fallback does not survive restarts or scale past a
	// single instance; it is meant for development.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, using in-memory token blacklist")
	}

	// Object storage for screenshot uploads
	screenshotStorage, err := storage.NewS3ScreenshotStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := screenshotStorage.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err))
	}
	log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	screenshotRepo := persistence.NewGormScreenshotRepository(db.DB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(
		userRepo, companyRepo, planRepo,
		jwtService, blacklist,
		identityapp.DefaultAuthServiceConfig(), log,
	)
	employeeService := identityapp.NewEmployeeService(userRepo, companyRepo, planRepo, log)
	planService := identityapp.NewPlanService(planRepo, log)

	screenshotConfig := monitoringapp.DefaultScreenshotServiceConfig()
	if cfg.Storage.MaxUploadBytes > 0 {
		screenshotConfig.MaxUploadBytes = cfg.Storage.MaxUploadBytes
	}
	screenshotService := monitoringapp.NewScreenshotService(
		screenshotRepo, userRepo, companyRepo, planRepo,
		screenshotStorage, screenshotConfig, log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	planHandler := handler.NewPlanHandler(planService)
	screenshotHandler := handler.NewScreenshotHandler(screenshotService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/plans",
		},
		Logger: log,
	}))

	// Public and session routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.RegisterCompany)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	planRoutes := router.NewDomainGroup("plans", "/plans")
	planRoutes.GET("", planHandler.List)

	// Employee management is owner-only
	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.Use(middleware.RequireOwnerWithConfig(middleware.RoleConfig{Logger: log}))
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:id", employeeHandler.Get)
	employeeRoutes.PUT("/:id", employeeHandler.Update)
	employeeRoutes.DELETE("/:id", employeeHandler.Delete)

	// Screenshot capture and administration
	screenshotRoutes := router.NewDomainGroup("screenshots", "/screenshots")
	screenshotRoutes.POST("", screenshotHandler.Upload)
	screenshotRoutes.GET("/:id/download", screenshotHandler.Download)
	screenshotRoutes.DELETE("/:id",
		middleware.RequireOwnerWithConfig(middleware.RoleConfig{Logger: log}),
		screenshotHandler.Delete)

	// Activity reports
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/screenshots", screenshotHandler.DayReport)
	reportRoutes.GET("/hours", screenshotHandler.HourHistogram)
	reportRoutes.GET("/statistics", screenshotHandler.Statistics)

	r.Register(authRoutes).
		Register(planRoutes).
		Register(employeeRoutes).
		Register(screenshotRoutes).
		Register(reportRoutes)

	r.Setup()

	// Retention sweeper removes screenshots past each company's plan
	// retention window.
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	if cfg.Retention.Enabled {
		go runRetentionSweeper(sweeperCtx, screenshotService, cfg.Retention.SweepInterval, log)
		log.Info("Retention sweeper enabled", zap.Duration("interval", cfg.Retention.SweepInterval))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runRetentionSweeper periodically deletes expired screenshots
func runRetentionSweeper(ctx context.Context, service *monitoringapp.ScreenshotService, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := service.SweepExpired(ctx)
			if err != nil {
				log.Error("Retention sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Info("Retention sweep completed", zap.Int64("removed", removed))
			}
		}
	}
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
