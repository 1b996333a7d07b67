package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hrms-service/internal/api/http"
	"github.com/spec-kit/hrms-service/internal/api/http/handlers"
	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/config"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/observability"
	"github.com/spec-kit/hrms-service/internal/persistence"
	"github.com/spec-kit/hrms-service/internal/repository"
	"github.com/spec-kit/hrms-service/internal/service"
	"github.com/spec-kit/hrms-service/internal/worker"
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
	employeeRepo := repository.NewEmployeeRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	payrollRepo := repository.NewPayrollRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)
	otpStore := repository.NewRedisOTPStore(redis.Client)
	revocationList := auth.NewRedisRevocationList(redis.Client)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo:      adminRepo,
		EmployeeRepo:   employeeRepo,
		RevocationList: revocationList,
	})
	otpService := service.NewOTPService(service.OTPDependencies{
		Store:        otpStore,
		AdminRepo:    adminRepo,
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	}, cfg.Auth.OTPTTL(), cfg.Auth.BcryptCost)
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher, cfg.Auth.BcryptCost)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, dispatcher)
	payrollService := service.NewPayrollService(payrollRepo, employeeRepo, dispatcher)
	taskService := service.NewTaskService(taskRepo, employeeRepo, dispatcher)
	holidayService := service.NewHolidayService(holidayRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), revocationList, logger)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, otpService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Attendance:     handlers.NewAttendanceHandler(attendanceService),
		Payroll:        handlers.NewPayrollHandler(payrollService),
		Tasks:          handlers.NewTasksHandler(taskService),
		Holidays:       handlers.NewHolidaysHandler(holidayService),
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
