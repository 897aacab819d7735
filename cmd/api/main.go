package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffhub-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/staffhub-hr/workforce-backend-go/internal/handler/http"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/cron"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-hr/workforce-backend-go/internal/service/attendance"
	authService "github.com/staffhub-hr/workforce-backend-go/internal/service/auth"
	holidayService "github.com/staffhub-hr/workforce-backend-go/internal/service/holiday"
	leaveService "github.com/staffhub-hr/workforce-backend-go/internal/service/leave"
	masterService "github.com/staffhub-hr/workforce-backend-go/internal/service/master"
	reportService "github.com/staffhub-hr/workforce-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Location())
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveRequestRepo,
		leaveBalanceRepo,
		userRepo,
		cfg.Leave.DefaultTotal,
		cfg.Leave.DecideGuard,
	)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	masterSvc := masterService.NewMasterService(departmentRepo)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Location())

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, cfg.Location()).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
