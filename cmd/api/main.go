package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/talent-bridge/internal/api/http"
	"github.com/spec-kit/talent-bridge/internal/api/http/handlers"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/config"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/observability"
	"github.com/spec-kit/talent-bridge/internal/persistence"
	"github.com/spec-kit/talent-bridge/internal/repository"
	"github.com/spec-kit/talent-bridge/internal/service"
	"github.com/spec-kit/talent-bridge/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	pipelineRepo := repository.NewPipelineRepository(pool)
	consentRepo := repository.NewConsentRepository(pool)
	quoteRepo := repository.NewQuoteRepository(pool)
	interviewRepo := repository.NewInterviewRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	viewCounter := repository.NewViewCounter(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo:   accountRepo,
		CandidateRepo: candidateRepo,
	})
	poolService := service.NewPoolService(service.PoolDependencies{
		CandidateRepo: candidateRepo,
		ConsentRepo:   consentRepo,
		DocumentRepo:  documentRepo,
		ViewCounter:   viewCounter,
	})
	pipelineService := service.NewPipelineService(service.PipelineDependencies{
		PipelineRepo:  pipelineRepo,
		CandidateRepo: candidateRepo,
		Dispatcher:    dispatcher,
	})
	consentService := service.NewConsentService(service.ConsentDependencies{
		ConsentRepo: consentRepo,
		AccountRepo: accountRepo,
		Dispatcher:  dispatcher,
	})
	quoteService := service.NewQuoteService(service.QuoteDependencies{
		QuoteRepo:     quoteRepo,
		AccountRepo:   accountRepo,
		CandidateRepo: candidateRepo,
		Dispatcher:    dispatcher,
	})
	interviewService := service.NewInterviewService(service.InterviewDependencies{
		InterviewRepo: interviewRepo,
		CandidateRepo: candidateRepo,
		AccountRepo:   accountRepo,
		Pipeline:      pipelineService,
		Dispatcher:    dispatcher,
	})
	verificationService := service.NewVerificationService(service.VerificationDependencies{
		AccountRepo:  accountRepo,
		DocumentRepo: documentRepo,
		Dispatcher:   dispatcher,
	})

	auditRecorder := service.NewAuditRecorder(dispatcher, auditRepo, logger)
	worker.StartAuditRecorder(auditRecorder)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), accountRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Pool:           handlers.NewPoolHandler(poolService, verificationService),
		Pipeline:       handlers.NewPipelineHandler(pipelineService),
		Consents:       handlers.NewConsentsHandler(consentService),
		Quotes:         handlers.NewQuotesHandler(quoteService),
		Interviews:     handlers.NewInterviewsHandler(interviewService),
		Staff:          handlers.NewStaffHandler(verificationService),
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
