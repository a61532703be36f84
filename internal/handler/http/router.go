package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	calendarHandler CalendarHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				// Own attendance
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
					r.Get("/today", attendanceHandler.GetToday)
					r.Get("/my/breakdown", attendanceHandler.GetMyBreakdown)
					r.Get("/my/calendar", attendanceHandler.GetMyCalendar)
				})

				// Manager only
				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/breakdown", attendanceHandler.GetEmployeeBreakdown)
					r.Get("/breakdown/export", reportHandler.ExportBreakdown)
					r.Get("/calendar", attendanceHandler.GetEmployeeCalendar)
					r.Get("/records", attendanceHandler.ListRecords)
					r.Put("/records/{date}", attendanceHandler.UpsertRecord)
					r.Delete("/records/{date}", attendanceHandler.DeleteRecord)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/holidays/{date}", calendarHandler.ClassifyDate)
				r.Get("/{year}/{month}", calendarHandler.GetMonth)
			})
		})
	})
	return r
}
