package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/bavaria-hr/attendance-backend-go/internal/handler/http"
	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/database"
	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/bavaria-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bavaria-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/bavaria-hr/attendance-backend-go/internal/service/auth"
	employeeService "github.com/bavaria-hr/attendance-backend-go/internal/service/employee"
	holidayService "github.com/bavaria-hr/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/bavaria-hr/attendance-backend-go/internal/service/leave"
	reportService "github.com/bavaria-hr/attendance-backend-go/internal/service/report"
	salaryService "github.com/bavaria-hr/attendance-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	salarySvc := salaryService.NewSalaryService(employeeRepo, attendanceRepo, leaveRepo, holidayRepo)
	reportSvc := reportService.NewReportService(salarySvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService.RefreshTokenCookie)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc, reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
		},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		holidayHandler,
		salaryHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, holidaySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
