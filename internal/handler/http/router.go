package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/middleware"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Student      StudentHandler
	Staff        StaffHandler
	Master       MasterHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Conduct      ConductHandler
	Memorization MemorizationHandler
	Billing      BillingHandler
	Recap        RecapHandler
	Dashboard    DashboardHandler
	File         FileHandler
}

func NewRouter(appConfig config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pesantren-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Xendit calls this endpoint directly, authenticated by the
		// callback token header instead of a JWT.
		r.Post("/billing/webhooks/xendit", h.Billing.XenditInvoiceWebhook)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/students", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStudentViewAll))
					r.Get("/", h.Student.List)
					r.Get("/{id}", h.Student.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStudentManage))
					r.Post("/", h.Student.Create)
					r.Put("/{id}", h.Student.Update)
					r.Delete("/{id}", h.Student.Deactivate)
					r.Put("/{id}/room", h.Student.AssignRoom)
					r.Post("/{id}/photo", h.Student.UploadPhoto)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionConductView))
					r.Get("/{id}/violations", h.Conduct.ListViolations)
					r.Get("/{id}/achievements", h.Conduct.ListAchievements)
					r.Get("/{id}/conduct", h.Conduct.PointSummary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMemorizationView))
					r.Get("/{id}/memorization", h.Memorization.ListByStudent)
					r.Get("/{id}/memorization/progress", h.Memorization.Progress)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionBillingView))
					r.Get("/{id}/bills", h.Billing.ListByStudent)
				})

				r.Get("/{id}/attendance", h.Attendance.ListByStudent)
				r.Get("/{id}/leaves", h.Leave.ListByStudent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecapView))
					r.Get("/{id}/recap/performance", h.Recap.StudentPerformance)
					r.Get("/{id}/recap/monthly", h.Recap.StudentMonthlyMatrix)
					r.Get("/{id}/recap/monthly/pdf", h.Recap.StudentMonthlyMatrixPDF)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffViewAll))
					r.Get("/", h.Staff.List)
					r.Get("/{id}", h.Staff.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffManage))
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Delete("/{id}", h.Staff.Deactivate)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecapView))
					r.Get("/{id}/recap/monthly", h.Recap.StaffMonthlyMatrix)
				})
			})

			r.Route("/master", func(r chi.Router) {
				// Reads are open to any authenticated user
				r.Get("/dormitories", h.Master.ListDormitories)
				r.Get("/dormitories/{id}", h.Master.GetDormitory)
				r.Get("/rooms", h.Master.ListRooms)
				r.Get("/rooms/{id}", h.Master.GetRoom)
				r.Get("/rooms/{id}/roster", h.Student.RoomRoster)
				r.Get("/classes", h.Master.ListClasses)
				r.Get("/classes/{id}", h.Master.GetClass)
				r.Get("/activities", h.Master.ListActivities)
				r.Get("/activities/{id}", h.Master.GetActivity)
				r.Get("/activities/{id}/occurrences", h.Master.ListOccurrences)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/dormitories", h.Master.CreateDormitory)
					r.Put("/dormitories/{id}", h.Master.UpdateDormitory)
					r.Delete("/dormitories/{id}", h.Master.DeleteDormitory)
					r.Post("/rooms", h.Master.CreateRoom)
					r.Put("/rooms/{id}", h.Master.UpdateRoom)
					r.Delete("/rooms/{id}", h.Master.DeleteRoom)
					r.Post("/classes", h.Master.CreateClass)
					r.Put("/classes/{id}", h.Master.UpdateClass)
					r.Delete("/classes/{id}", h.Master.DeleteClass)
					r.Post("/activities", h.Master.CreateActivity)
					r.Put("/activities/{id}", h.Master.UpdateActivity)
					r.Delete("/activities/{id}", h.Master.DeactivateActivity)
					r.Post("/activities/{id}/occurrences", h.Master.CreateOccurrence)
					r.Delete("/occurrences/{occurrenceID}", h.Master.DeleteOccurrence)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceRecord))
					r.Post("/", h.Attendance.Record)
					r.Post("/roll-call", h.Attendance.RecordRollCall)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/", h.Attendance.List)
					r.Get("/occurrences/{id}/sheet", h.Attendance.OccurrenceSheet)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveCreate))
					r.Post("/", h.Leave.Create)
				})

				r.Get("/{id}", h.Leave.Get)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
					r.Get("/", h.Leave.List)
				})

				// Role legality per event is enforced in the service;
				// the route only requires an authenticated pengurus.
				r.Post("/{id}/transition/{event}", h.Leave.Transition)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionConductRecord))
				r.Post("/violations", h.Conduct.RecordViolation)
				r.Delete("/violations/{id}", h.Conduct.DeleteViolation)
				r.Post("/achievements", h.Conduct.RecordAchievement)
				r.Delete("/achievements/{id}", h.Conduct.DeleteAchievement)
			})

			r.Route("/memorization", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMemorizationRecord))
				r.Post("/", h.Memorization.RecordEntry)
				r.Delete("/{id}", h.Memorization.Delete)
			})

			r.Route("/billing", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionBillingManage))
					r.Post("/generate", h.Billing.GenerateBills)
					r.Get("/", h.Billing.List)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionBillingView))
					r.Get("/{id}", h.Billing.Get)
					r.Post("/{id}/pay", h.Billing.Pay)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.Summary)
				r.Get("/guardian", h.Dashboard.GuardianSummary)
			})

			// Stored photos and archived recap PDFs.
			r.Get("/uploads/*", h.File.Serve)
		})
	})
	return r
}
