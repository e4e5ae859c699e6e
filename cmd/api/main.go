package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	httptransport "github.com/port-russell/marina-service/internal/api/http"
	"github.com/port-russell/marina-service/internal/api/http/handlers"
	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/config"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/observability"
	"github.com/port-russell/marina-service/internal/persistence"
	"github.com/port-russell/marina-service/internal/repository"
	"github.com/port-russell/marina-service/internal/service"
	"github.com/port-russell/marina-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	catwayRepo := repository.NewCatwayRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify.WebhookURL)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.LoginTokenTTL(), cfg.Auth.RefreshTokenTTL())
	authMiddleware := auth.NewMiddleware(tokenManager)

	userService := service.NewUserService(userRepo, dispatcher, tokenManager, cfg.Auth.BcryptCost)
	catwayService := service.NewCatwayService(catwayRepo, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, catwayRepo, dispatcher)
	dashboardService := service.NewDashboardService(userRepo, catwayRepo, bookingRepo)
	apiClient := service.NewAPIClient(cfg.Proxy.APIBaseURL, cfg.Proxy.Timeout())

	app := fiber.New(fiber.Config{
		Views: html.New("./views", ".html"),
	})

	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(userService, logger),
		Catways:        handlers.NewCatwaysHandler(catwayService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, bookingService, apiClient, logger),
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
