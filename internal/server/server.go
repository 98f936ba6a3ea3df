// Package server assembles the HTTP surface: middleware chain, handlers,
// services and repositories wired against one database handle.
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/handlers"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/middleware"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	APIPrefix = "/api/v1"

	bodyLimit = "1M"
)

// Options carries the collaborators that differ between production and tests.
type Options struct {
	Version string
	Logger  *slog.Logger

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// Providers defaults to llm.NewProvider.
	Providers llm.Factory

	// SimulatorSeed seeds the demo webhook generator. Zero uses the clock.
	SimulatorSeed uint64
}

type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// New wires every repository, service and handler and registers the routes.
func New(cfg *config.Config, db *gorm.DB, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Providers == nil {
		opts.Providers = llm.NewProvider
	}
	if opts.SimulatorSeed == 0 {
		opts.SimulatorSeed = uint64(time.Now().UnixNano())
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(opts.Logger, opts.Registerer).Handle
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		echo:        e,
		cfg:         cfg,
		rateLimiter: middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
		logger:      opts.Logger,
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.PanicRecovery(opts.Logger))
	e.Use(middleware.SecurityHeaders())
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		}))
	}
	e.Use(echomw.BodyLimit(bodyLimit))

	s.registerRoutes(db, opts)
	return s
}

func (s *Server) registerRoutes(db *gorm.DB, opts Options) {
	cfg := s.cfg

	userRepo := repositories.NewUserRepository(db)
	tenantRepo := repositories.NewTenantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewProviderItemRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	proposalRepo := repositories.NewProposalRepository(db)
	executionRepo := repositories.NewActionExecutionRepository(db)
	eventRepo := repositories.NewWebhookEventRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	metrics := services.NewPrometheusMetrics(opts.Registerer)
	auditLogger := services.NewAuditLogger(opts.Logger)
	auditService := services.NewAuditService(auditRepo, opts.Logger)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)

	authService := services.NewAuthService(userRepo, auditService, passwordService, tokenService, metrics, opts.Logger)
	proposalService := services.NewProposalService(
		cfg.AI,
		opts.Providers,
		services.NewGroundingService(txnRepo),
		services.NewProposalValidator(categoryRepo),
		proposalRepo,
		auditLogger,
		auditService,
		metrics,
	)
	confirmationService := services.NewConfirmationService(
		db, proposalRepo, txnRepo, categoryRepo, executionRepo, auditLogger, auditService, metrics,
	)
	webhookService := services.NewWebhookService(
		db, cfg.Webhook.SigningSecret, itemRepo, eventRepo, txnRepo, auditLogger, auditService, metrics,
	)

	healthHandler := handlers.NewHealthCheckHandler(db, opts.Version)
	authHandler := handlers.NewAuthHandler(authService)
	proposalHandler := handlers.NewProposalHandler(proposalService, confirmationService)
	transactionHandler := handlers.NewTransactionHandler(services.NewTransactionService(txnRepo))
	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo))
	auditHandler := handlers.NewAuditHandler(auditService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)

	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	api := s.echo.Group(APIPrefix, s.rateLimiter.Middleware())
	api.POST("/auth/login", authHandler.Login)
	api.POST("/webhooks/plaid", webhookHandler.ReceivePlaid)

	authed := []echo.MiddlewareFunc{middleware.RequireAuth(tokenService), middleware.RequireTenant(userRepo)}
	api.POST("/ai/propose", proposalHandler.Propose, authed...)
	api.POST("/ai/confirm", proposalHandler.Confirm, authed...)
	api.GET("/ai/proposals", proposalHandler.ListProposals, authed...)
	api.GET("/transactions", transactionHandler.ListTransactions, authed...)
	api.GET("/categories", categoryHandler.ListCategories, authed...)
	api.GET("/categories/summary", categoryHandler.GetCategorySummaries, authed...)
	api.GET("/audit", auditHandler.ListActivity, authed...)

	if cfg.Demo.AdminSecret == "" {
		s.logger.Info("demo endpoints disabled: DEMO_ADMIN_SECRET is not set")
		return
	}

	demoService := services.NewDemoService(db, services.DemoRepositories{
		Tenants:      tenantRepo,
		Users:        userRepo,
		Items:        itemRepo,
		Categories:   categoryRepo,
		Transactions: txnRepo,
		Proposals:    proposalRepo,
		Executions:   executionRepo,
		Events:       eventRepo,
		AuditLogs:    auditRepo,
	}, passwordService, tokenService, auditService, opts.Logger)
	demoHandler := handlers.NewDemoHandler(
		demoService,
		webhookService,
		services.NewWebhookSimulator(opts.SimulatorSeed),
		cfg.Webhook.SigningSecret,
	)

	admin := middleware.RequireDemoAdmin(cfg.Demo.AdminSecret)
	api.POST("/demo/bootstrap", demoHandler.Bootstrap, admin)
	api.POST("/demo/reset", demoHandler.Reset, admin)
	api.POST("/demo/simulate-webhook", demoHandler.SimulateWebhook, admin)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on the configured address until ctx is cancelled, then drains
// in-flight requests for at most Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", s.cfg.Server.Address(), "env", s.cfg.Server.Environment)
		if err := s.echo.Start(s.cfg.Server.Address()); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.rateLimiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", "timeout", s.cfg.Server.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
