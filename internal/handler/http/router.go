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

	"github.com/restotrack/personnel-backend-go/internal/handler/http/middleware"
	"github.com/restotrack/personnel-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Personnel  PersonnelHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Absence    AbsenceHandler
	Adjustment AdjustmentHandler
	Summary    SummaryHandler
	Audit      AuditHandler
	Kiosk      KioskHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "personnel-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Kiosk screens poll for fresh tokens without a user session.
		r.Get("/kiosk/locations", h.Kiosk.ListLocations)
		r.Post("/kiosk/tokens", h.Kiosk.GenerateToken)

		// Clock terminals are unauthenticated; identity comes from the
		// posted personnel id plus an optional single-use QR token.
		r.Post("/attendance/check-in", h.Attendance.CheckIn)
		r.Put("/attendance/{id}/check-out", h.Attendance.CheckOut)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/personnel", func(r chi.Router) {
				r.Get("/", h.Personnel.List)
				r.Get("/{id}", h.Personnel.Get)
				r.Get("/{id}/summary", h.Summary.Range)
				r.Get("/{id}/summary/current-month", h.Summary.CurrentMonth)
				r.Get("/{id}/summary/trailing-30", h.Summary.Trailing30)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Personnel.Create)
					r.Put("/{id}", h.Personnel.Update)
					r.Delete("/{id}", h.Personnel.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/recompute", h.Attendance.Recompute)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Leave.Create)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/", h.Absence.List)
				r.Get("/{id}", h.Absence.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Absence.Create)
					r.Delete("/{id}", h.Absence.Delete)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", h.Adjustment.List)
				r.Get("/{id}", h.Adjustment.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Adjustment.Create)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/audit-logs", h.Audit.List)
				r.Post("/kiosk/locations", h.Kiosk.CreateLocation)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
