package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	appHTTP "github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/cache"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/cron"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/database"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/jwt"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/oauth"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/storage"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/xendit"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/attendance"
	serviceAuth "github.com/ponpes-albadr/pesantren-backend-go/internal/service/auth"
	billingService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/billing"
	conductService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/conduct"
	dashboardService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/dashboard"
	leaveService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/service/master"
	memorizationService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/memorization"
	recapService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/recap"
	staffService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/staff"
	studentService "github.com/ponpes-albadr/pesantren-backend-go/internal/service/student"
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
	defer db.Close()

	recapCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer recapCache.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialise file storage:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	dormitoryRepo := postgresql.NewDormitoryRepository(db)
	roomRepo := postgresql.NewRoomRepository(db)
	classRepo := postgresql.NewSchoolClassRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	staffAttendanceRepo := postgresql.NewStaffAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	conductRepo := postgresql.NewConductRepository(db)
	memorizationRepo := postgresql.NewMemorizationRepository(db)
	billingRepo := postgresql.NewBillingRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	xenditClient := xendit.NewClient(cfg.Xendit)
	webhookVerifier := xendit.NewWebhookVerifier(cfg.Xendit.CallbackToken)

	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService)
	studentSvc := studentService.NewStudentService(studentRepo, roomRepo, fileStorage)
	staffSvc := staffService.NewStaffService(staffRepo)
	masterSvc := master.NewMasterService(dormitoryRepo, roomRepo, classRepo, activityRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffAttendanceRepo, studentRepo, activityRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, studentRepo, cfg.Leave)
	conductSvc := conductService.NewConductService(conductRepo, studentRepo)
	memorizationSvc := memorizationService.NewMemorizationService(memorizationRepo, studentRepo)
	billingSvc := billingService.NewBillingService(billingRepo, studentRepo, xenditClient)
	recapSvc := recapService.NewRecapService(attendanceRepo, staffAttendanceRepo, studentRepo, staffRepo, recapCache, fileStorage, cfg.App)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, studentRepo)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveRepo, cfg.Leave).RegisterJobs(scheduler)
	cron.NewBillingJobs(billingRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Student:      appHTTP.NewStudentHandler(studentSvc),
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Conduct:      appHTTP.NewConductHandler(conductSvc),
		Memorization: appHTTP.NewMemorizationHandler(memorizationSvc),
		Billing:      appHTTP.NewBillingHandler(billingSvc, webhookVerifier),
		Recap:        appHTTP.NewRecapHandler(recapSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		File:         appHTTP.NewFileHandler(fileStorage),
	}

	router := appHTTP.NewRouter(cfg.App, jwtService, handlers)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
