package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/careerhub/internal/api/http"
	"github.com/spec-kit/careerhub/internal/api/http/handlers"
	"github.com/spec-kit/careerhub/internal/auth"
	"github.com/spec-kit/careerhub/internal/config"
	"github.com/spec-kit/careerhub/internal/events"
	"github.com/spec-kit/careerhub/internal/observability"
	"github.com/spec-kit/careerhub/internal/persistence"
	"github.com/spec-kit/careerhub/internal/repository"
	"github.com/spec-kit/careerhub/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer store.Close(context.Background())

	if cfg.Mongo.EnsureIndexes && store.DatabaseHandle() != nil {
		if err := persistence.EnsureIndexes(ctx, store.DatabaseHandle(), logger); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	db := store.DatabaseHandle()
	accountRepo := repository.NewAccountRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	founderRepo := repository.NewFounderRepository(db)
	recruiterRepo := repository.NewRecruiterRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	limiter := service.NewLoginLimiter(redis.Client,
		cfg.Auth.LoginMaxAttempts,
		time.Duration(cfg.Auth.LoginLockoutMinutes)*time.Minute,
		logger)

	identityService := service.NewIdentityService(*cfg, service.IdentityDependencies{
		AccountRepo:     accountRepo,
		RecruiterRepo:   recruiterRepo,
		ApplicationRepo: applicationRepo,
		Limiter:         limiter,
		Dispatcher:      dispatcher,
	}, logger)

	authzService := service.NewAuthorizationService(founderRepo, recruiterRepo)

	companyService := service.NewCompanyService(service.CompanyDependencies{
		CompanyRepo:     companyRepo,
		FounderRepo:     founderRepo,
		RecruiterRepo:   recruiterRepo,
		OpportunityRepo: opportunityRepo,
		Dispatcher:      dispatcher,
	}, logger)

	opportunityService := service.NewOpportunityService(service.OpportunityDependencies{
		OpportunityRepo: opportunityRepo,
		ApplicationRepo: applicationRepo,
		AccountRepo:     accountRepo,
		CompanyRepo:     companyRepo,
		Authorization:   authzService,
		Dispatcher:      dispatcher,
	}, logger)

	authMiddleware := auth.NewAuthMiddleware(identityService.TokenManager(), accountRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, redis),
		Accounts:       handlers.NewAccountsHandler(identityService),
		Companies:      handlers.NewCompaniesHandler(companyService, authzService),
		Opportunities:  handlers.NewOpportunitiesHandler(opportunityService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
