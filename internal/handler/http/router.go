package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/config"
	"github.com/staffhub-hr/workforce-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Master     MasterHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin-driven user registration
			r.With(middleware.AdminOnly).Post("/auth/register", h.Auth.Register)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/signin", h.Attendance.SignIn)
				r.Post("/signout", h.Attendance.SignOut)
				r.Get("/my-history", h.Attendance.MyHistory)
				r.Get("/my-summary", h.Attendance.MySummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin-report", h.Attendance.AdminReport)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/apply", h.Leave.Apply)
				r.Get("/my", h.Leave.MyLeaves)
				r.Get("/my-balance", h.Leave.MyBalance)

				// Admin only
				r.Route("/admin", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.AllLeaves)
					r.Get("/leave-summary", h.Leave.LeaveSummary)
					r.Post("/set-balance", h.Leave.SetBalance)
					r.Put("/{id}", h.Leave.Decide)
					r.Patch("/{id}", h.Leave.Decide)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			// Admin only
			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Master.ListDepartments)
				r.Post("/", h.Master.CreateDepartment)
				r.Put("/{id}", h.Master.UpdateDepartment)
				r.Delete("/{id}", h.Master.DeleteDepartment)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/admin-dashboard", h.Report.AdminDashboard)
			})
		})
	})

	return r
}
