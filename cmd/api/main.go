package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/crestfin/crm-backend-go/internal/config"
	appHTTP "github.com/crestfin/crm-backend-go/internal/handler/http"
	"github.com/crestfin/crm-backend-go/internal/pkg/cron"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/crestfin/crm-backend-go/internal/pkg/email"
	"github.com/crestfin/crm-backend-go/internal/pkg/facematch"
	"github.com/crestfin/crm-backend-go/internal/pkg/jwt"
	"github.com/crestfin/crm-backend-go/internal/pkg/storage"
	"github.com/crestfin/crm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/crestfin/crm-backend-go/internal/service/attendance"
	"github.com/crestfin/crm-backend-go/internal/service/file"
	leaveService "github.com/crestfin/crm-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	graceUsageRepo := postgresql.NewGraceUsageRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	matcher := facematch.NewClient(
		cfg.FaceMatch.BaseURL,
		cfg.FaceMatch.APIKey,
		time.Duration(cfg.FaceMatch.TimeoutSeconds)*time.Second,
	)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		graceUsageRepo,
		employeeRepo,
		holidayRepo,
		leaveRepo,
		fileService,
		matcher,
		emailService,
		cfg.Policy,
		cfg.FaceMatch.MinConfidence,
		cfg.App.HRAlertEmail,
	)
	leaveSvc := leaveService.NewLeaveService(
		leaveRepo,
		employeeRepo,
		emailService,
		cfg.Policy,
		cfg.App.HRAlertEmail,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo)

	router := appHTTP.NewRouter(jwtService, attendanceHandler, leaveHandler, holidayHandler)

	scheduler := cron.NewScheduler()
	jobs := cron.NewAttendanceJobs(attendanceSvc, leaveSvc)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
