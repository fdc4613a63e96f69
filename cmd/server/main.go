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

	calcapp "github.com/erp/mfgdesk/internal/application/calculation"
	docapp "github.com/erp/mfgdesk/internal/application/document"
	importapp "github.com/erp/mfgdesk/internal/application/import"
	masterapp "github.com/erp/mfgdesk/internal/application/master"
	printapp "github.com/erp/mfgdesk/internal/application/printing"
	reportapp "github.com/erp/mfgdesk/internal/application/report"
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/infrastructure/auth"
	"github.com/erp/mfgdesk/internal/infrastructure/cache"
	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/persistence"
	"github.com/erp/mfgdesk/internal/infrastructure/phone"
	infra "github.com/erp/mfgdesk/internal/infrastructure/printing"
	"github.com/erp/mfgdesk/internal/infrastructure/storage"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"github.com/erp/mfgdesk/internal/interfaces/http/handler"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/erp/mfgdesk/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/erp/mfgdesk/docs"
)

//	@title			mfgdesk API
//	@version		1.0
//	@description	Masters, trade documents and invoice printing for a small manufacturing business.

//	@contact.name	mfgdesk maintainers
//	@contact.url	https://github.com/erp/mfgdesk

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "mfgdesk",
		Short:         "mfgdesk API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newTokenCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newTokenCommand issues a bearer token for an operator. There is no login
// flow; tokens are minted out of band with the server's secret.
func newTokenCommand() *cobra.Command {
	var (
		subject string
		name    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the configured JWT secret",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := auth.NewJWTService(cfg.JWT)
			if err != nil {
				return err
			}
			token, expires, err := svc.Issue(subject, name, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintln(cmd.ErrOrStderr(), "expires:", expires.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "user id stamped as createdBy (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting mfgdesk",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("db_driver", cfg.Database.Driver),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Tracing comes up before the database so GORM spans have a provider.
	otelCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}
	tp, err := telemetry.NewTracerProvider(ctx, otelCfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	lp, err := telemetry.NewLoggerProvider(ctx, otelCfg, cfg.Telemetry.LogsEnabled, log)
	if err != nil {
		return fmt.Errorf("failed to initialize log export: %w", err)
	}
	defer func() { _ = lp.Shutdown(context.Background()) }()
	log = lp.Tee(log, logger.ParseLevel(cfg.Log.Level))

	mp, err := telemetry.NewMeterProvider(ctx, otelCfg, cfg.Telemetry.MetricsEnabled, cfg.Telemetry.MetricsInterval, log)
	if err != nil {
		return fmt.Errorf("failed to initialize metric export: %w", err)
	}
	defer func() { _ = mp.Shutdown(context.Background()) }()

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.PyroscopeServer,
		ApplicationName: cfg.Telemetry.ServiceName,
		Tags:            map[string]string{"env": cfg.App.Env, "version": version},
	}, log)
	if err != nil {
		return fmt.Errorf("failed to start profiler: %w", err)
	}
	defer func() { _ = profiler.Stop() }()
	if profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("Schema migrated")
	}

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:          cfg.Database.DBName,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, log); err != nil {
		return fmt.Errorf("failed to register db tracing: %w", err)
	}
	if mp.IsEnabled() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		reg, err := telemetry.RegisterDBPoolMetrics(mp.Meter("mfgdesk/db"), sqlDB)
		if err != nil {
			return fmt.Errorf("failed to register db pool metrics: %w", err)
		}
		defer func() { _ = reg.Unregister() }()
	}

	backends, err := cache.NewFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.IsProduction()),
	).Create()
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer func() { _ = backends.Close() }()

	metrics := telemetry.NewMetrics()

	// Repositories
	var store record.Store = persistence.NewGormRecordStore(db.DB,
		persistence.WithNormalizer(persistence.DefaultNormalizer()))
	store = cache.NewCachedStore(store, backends.Buckets, cfg.Redis.CacheTTL,
		cache.WithLookupObserver(func(bucket record.Bucket, hit bool) {
			metrics.ObserveCacheLookup(bucket.Collection, hit)
		}),
	)
	parties := persistence.NewRecordRepository[master.Party](store, master.PartyCollection)
	items := persistence.NewRecordRepository[master.Item](store, master.ItemCollection)
	documents := persistence.NewRecordRepository[document.Document](store, document.Collection)

	// Application services
	formatter := phone.NewFormatter(cfg.App.PhoneRegion)
	partyService := masterapp.NewPartyService(parties,
		masterapp.WithPhoneFormatter(formatter),
		masterapp.WithWriteObserver(metrics),
		masterapp.WithLocker(backends.Locker, cfg.Redis.LockTTL),
	)
	itemService := masterapp.NewItemService(items,
		masterapp.WithWriteObserver(metrics),
		masterapp.WithLocker(backends.Locker, cfg.Redis.LockTTL),
	)
	documentService := docapp.NewDocumentService(documents,
		docapp.WithWriteObserver(metrics),
		docapp.WithLocker(backends.Locker, cfg.Redis.LockTTL),
	)
	importService := importapp.NewMasterImportService(partyService, itemService)
	dashboardService := reportapp.NewDashboardService(parties, items, documents)

	printService, closePrinter, err := newPrintService(ctx, cfg, documentService, log)
	if err != nil {
		return err
	}
	defer closePrinter()

	if err := middleware.SetupValidator(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	engine, err := router.NewEngine(router.EngineConfig{
		HTTP:      cfg.HTTP,
		Swagger:   cfg.Swagger,
		Telemetry: cfg.Telemetry,
		Security:  middleware.DefaultSecurityConfig(),
		Logger:    log,
		Metrics:   metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to build http engine: %w", err)
	}

	checks := map[string]handler.HealthCheck{
		"database": func(context.Context) error { return db.Ping() },
	}
	if backends.Distributed() {
		checks["cache"] = func(ctx context.Context) error { return backends.Client().Ping(ctx).Err() }
	}
	systemHandler := handler.NewSystemHandler(handler.SystemInfo{
		Name:      cfg.App.Name,
		Version:   version,
		Env:       cfg.App.Env,
		StartedAt: time.Now(),
	}, checks)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	if cfg.JWT.Enabled {
		jwtService, err := auth.NewJWTService(cfg.JWT)
		if err != nil {
			return fmt.Errorf("failed to initialize jwt: %w", err)
		}
		r.Use(middleware.JWTAuth(middleware.DefaultJWTConfig(jwtService)))
	}
	if cfg.HTTP.RateLimitEnabled {
		r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)))
	}
	r.Use(middleware.Idempotency(backends.Idempotency, middleware.DefaultIdempotencyTTL))

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(
		handler.NewPartyHandler(partyService),
		handler.NewItemHandler(itemService),
		handler.NewImportHandler(importService),
		handler.NewDocumentHandler(documentService),
		handler.NewPrintHandler(printService),
		handler.NewCoreHandler(calcapp.NewService()),
		handler.NewDashboardHandler(dashboardService),
		systemRoutes,
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited gracefully")
	return nil
}

// newPrintService wires the invoice printer. PDF rendering needs a browser and
// archiving needs a bucket; either may be switched off independently.
func newPrintService(ctx context.Context, cfg *config.Config, documents *docapp.DocumentService, log *zap.Logger) (*printapp.PrintService, func(), error) {
	var renderer infra.PDFRenderer
	if cfg.Printing.Enabled {
		renderer = infra.NewChromedpRenderer(infra.ChromedpConfig{
			DefaultTimeout: cfg.Printing.Timeout,
			RemoteURL:      cfg.Printing.ChromeURL,
			ExecPath:       cfg.Printing.ExecPath,
			NoSandbox:      true,
			Logger:         log,
		})
		log.Info("PDF rendering enabled", zap.Bool("remote", cfg.Printing.ChromeURL != ""))
	}

	printer, err := infra.NewInvoicePrinter(infra.Letterhead{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		GSTIN:   cfg.Company.GSTIN,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}, nil, renderer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load invoice template: %w", err)
	}
	closePrinter := func() { _ = printer.Close() }

	var archive printapp.ObjectStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			closePrinter()
			return nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			closePrinter()
			return nil, nil, fmt.Errorf("failed to prepare bucket %q: %w", cfg.Storage.Bucket, err)
		}
		archive = s3
		log.Info("Invoice archiving enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return printapp.NewPrintService(documents, printer, archive, log), closePrinter, nil
}
