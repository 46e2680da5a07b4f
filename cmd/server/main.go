package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ahsan757/attendance/internal/adapters/http/handler"
	"github.com/ahsan757/attendance/internal/adapters/notify"
	"github.com/ahsan757/attendance/internal/adapters/report/render"
	"github.com/ahsan757/attendance/internal/adapters/repository/postgres"
	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/branch"
	"github.com/ahsan757/attendance/internal/core/employee"
	"github.com/ahsan757/attendance/internal/core/report"
	"github.com/ahsan757/attendance/internal/core/salary"
	"github.com/ahsan757/attendance/internal/platform/config"
	pg "github.com/ahsan757/attendance/internal/platform/db/postgres"
	"github.com/ahsan757/attendance/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	clock := attendance.NewZoneClock(cfg.Attendance.Location)

	branchRepo := postgres.NewBranchRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	attendanceRepo := postgres.NewAttendanceRepository(dbPool)

	branchSvc := branch.NewService(branchRepo)
	employeeSvc := employee.NewService(employeeRepo, clock)

	var notifier attendance.Notifier
	if cfg.Notifications.SlackEnabled {
		notifier = notify.NewSlackNotifier(nil, notify.Options{
			WebhookURL:       cfg.Notifications.SlackWebhookURL,
			Channel:          cfg.Notifications.SlackChannel,
			NotifyOnCheckIn:  cfg.Notifications.NotifyOnCheckIn,
			NotifyOnCheckOut: cfg.Notifications.NotifyOnCheckOut,
		})
	}

	attendanceSvc := attendance.NewService(attendanceRepo, branchSvc, notifier, clock, txManager, cfg.Attendance.DuplicateWindow)
	salarySvc := salary.NewService(employeeRepo, branchRepo, attendanceRepo)
	reportSvc := report.NewService(branchRepo, attendanceRepo)

	router := handler.NewRouter(handler.Handlers{
		Event:    handler.NewEventHandler(attendanceSvc),
		Employee: handler.NewEmployeeHandler(employeeSvc),
		Branch:   handler.NewBranchHandler(branchSvc),
		Salary:   handler.NewSalaryHandler(salarySvc),
		Report:   handler.NewReportHandler(reportSvc, render.NewRenderer(), clock, report.Format(cfg.Reports.DefaultFormat)),
	})

	httpServer := server.New(cfg.Server.ListenAddr, router)

	log.Printf("attendance server listening on %s", cfg.Server.ListenAddr)

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
