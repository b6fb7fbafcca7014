package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/campaign/backend/internal/application/catalog"
	campaignapp "github.com/campaign/backend/internal/application/campaign"
	identityapp "github.com/campaign/backend/internal/application/identity"
	"github.com/campaign/backend/internal/infrastructure/auth"
	"github.com/campaign/backend/internal/infrastructure/cache"
	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/openfoodfacts"
	"github.com/campaign/backend/internal/infrastructure/persistence"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"github.com/campaign/backend/internal/interfaces/http/handler"
	"github.com/campaign/backend/internal/interfaces/http/middleware"
	"github.com/campaign/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/campaign/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	shutdownTimeout    = 30 * time.Second
	rateLimiterTTL     = 10 * time.Minute
	metricsNamespace   = "campaign"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting campaign backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsExport,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = lp.Shutdown(shutdownCtx)
	}()
	log = lp.Bridge(log, logger.ParseLevel(cfg.Log.Level))

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MeterConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsExport,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled || mp.IsEnabled() {
		metrics = telemetry.NewMetrics(metricsNamespace)
	}
	if mp.IsEnabled() {
		if err := metrics.Export(mp.Meter("github.com/campaign/backend")); err != nil {
			return err
		}
	}

	store, err := cache.NewStoreFactory(cfg.Redis, cfg.Catalog.CacheTTL,
		cache.WithLogger(log),
		cache.WithKeyPrefix(cfg.App.Name+":"),
	).CreateStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	checks := map[string]handler.Pinger{"database": db}
	if pinger, ok := store.(handler.Pinger); ok && cfg.Redis.Enabled {
		checks["redis"] = pinger
	}

	engine, err := newEngine(cfg, log, db, store, metrics, checks, tp.IsEnabled())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Failed to start server", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exited gracefully")
	return nil
}

// newEngine wires repositories, services and handlers into a gin engine
func newEngine(cfg *config.Config, log *zap.Logger, db *persistence.Database, store cache.Store, metrics *telemetry.Metrics, checks map[string]handler.Pinger, tracing bool) (*gin.Engine, error) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	campaignProductRepo := persistence.NewGormCampaignProductRepository(db.DB)

	catalogClient := openfoodfacts.NewCachedClient(
		openfoodfacts.NewClient(cfg.Catalog, log, openfoodfacts.WithMetrics(metrics)),
		store,
		cfg.Catalog.CacheTTL,
		cfg.Catalog.NegativeTTL,
		metrics,
		log,
	)
	resolver := catalogapp.NewProductResolver(productRepo, catalogClient, cfg.Catalog.Timeout, metrics)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if cfg.JWT.Secret == "" {
		// Production refuses to start without a secret, see config validation
		cfg.JWT.Secret = rand.Text() + rand.Text()
		log.Warn("jwt.secret is empty, using an ephemeral secret; tokens will not survive a restart")
	}
	tokens := auth.NewJWTService(cfg.JWT)

	handlers := router.APIHandlers{
		Campaigns: handler.NewCampaignHandler(campaignapp.NewCampaignService(campaignRepo, campaignProductRepo, resolver, metrics)),
		Products:  handler.NewProductHandler(catalogapp.NewProductService(productRepo, resolver)),
		Users:     handler.NewUserHandler(identityapp.NewUserService(userRepo, hasher)),
		Auth:      handler.NewAuthHandler(identityapp.NewAuthService(userRepo, hasher, tokens)),
		System:    handler.NewSystemHandler(cfg.App.Name, version, checks),
	}

	jwtConfig := middleware.DefaultJWTConfig(tokens)
	jwtConfig.Logger = log
	requireToken := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)
	jwtConfig.Optional = !cfg.Auth.RequireAuth
	protect := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)
	if !cfg.Auth.RequireAuth {
		log.Warn("Authentication is not enforced on resource routes")
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	tracingConfig := middleware.DefaultTracingConfig()
	tracingConfig.Enabled = tracing
	tracingConfig.ServiceName = cfg.Telemetry.ServiceName

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(tracingConfig),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
		metrics.GinMiddleware(),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, rateLimiterTTL)
		engine.Use(middleware.RateLimit(limiter))
	}
	engine.NoRoute(handler.NoRoute)

	if metrics != nil && cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	swaggerGroup := engine.Group("/swagger")
	swaggerGroup.Use(middleware.SwaggerProtection(middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	}))
	swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := router.NewRouter(engine)
	router.RegisterAPI(r, handlers, router.AuthMiddleware{Protect: protect, RequireToken: requireToken}).Setup()

	log.Info("Routes registered",
		zap.Bool("require_auth", cfg.Auth.RequireAuth),
		zap.Bool("metrics", metrics != nil && cfg.Metrics.Enabled),
		zap.Bool("swagger", cfg.Swagger.Enabled),
	)
	return engine, nil
}
