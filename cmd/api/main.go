package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bookstore-service/internal/api/http"
	"github.com/spec-kit/bookstore-service/internal/api/http/handlers"
	"github.com/spec-kit/bookstore-service/internal/auth"
	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/events"
	"github.com/spec-kit/bookstore-service/internal/observability"
	"github.com/spec-kit/bookstore-service/internal/persistence"
	"github.com/spec-kit/bookstore-service/internal/repository"
	"github.com/spec-kit/bookstore-service/internal/service"
	"github.com/spec-kit/bookstore-service/internal/worker"
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

	metrics := observability.NewMetrics()

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
	roleRepo := repository.NewRoleRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	partnerRepo := repository.NewPartnerRepository(pool)
	groupRepo := repository.NewPartnerGroupRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification, cfg.App.BaseURL)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	gate := auth.NewMiddleware(authService.TokenManager(), userRepo)

	categoryService := service.NewCategoryService(categoryRepo, redis, logger)
	groupService := service.NewPartnerGroupService(groupRepo)
	partnerService := service.NewPartnerService(partnerRepo, groupRepo)
	roleService := service.NewRoleService(roleRepo)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService),
		Categories:    handlers.NewCategoriesHandler(categoryService),
		Partners:      handlers.NewPartnersHandler(partnerService),
		PartnerGroups: handlers.NewPartnerGroupsHandler(groupService),
		Roles:         handlers.NewRolesHandler(roleService),
		Users:         handlers.NewUsersHandler(userService),
		Gate:          gate,
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
