package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrledger/hr-backend-go/internal/config"
	"github.com/hrledger/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrledger/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	ledgerHandler LedgerHandler,
	leaveHandler LeaveHandler,
	companyHandler CompanyHandler,
	summaryHandler SummaryHandler,
	accountHandler AccountHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Get("/", accountHandler.GetOwnProfile)
				r.Post("/check-in", accountHandler.CheckIn)
				r.Get("/check-ins", accountHandler.ListOwnCheckIns)
				r.Put("/password", accountHandler.UpdateOwnPassword)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Get("/{id}/summary", summaryHandler.GetEmployeeSummary)
					r.Get("/{id}/summary/export", summaryHandler.ExportEmployeeSummary)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Put("/", attendanceHandler.RecordStatus)
					r.Get("/", attendanceHandler.List)
					r.Delete("/{id}", attendanceHandler.Delete)
				})

				r.Route("/advances", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateAdvance)
					r.Get("/", ledgerHandler.ListAdvances)
					r.Put("/{id}", ledgerHandler.UpdateAdvance)
					r.Delete("/{id}", ledgerHandler.DeleteAdvance)
				})

				r.Route("/bonuses", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateBonus)
					r.Get("/", ledgerHandler.ListBonuses)
					r.Put("/{id}", ledgerHandler.UpdateBonus)
					r.Delete("/{id}", ledgerHandler.DeleteBonus)
				})

				r.Route("/discounts", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateDiscount)
					r.Get("/", ledgerHandler.ListDiscounts)
					r.Put("/{id}", ledgerHandler.UpdateDiscount)
					r.Delete("/{id}", ledgerHandler.DeleteDiscount)
				})

				r.Route("/overtime", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateOvertime)
					r.Get("/", ledgerHandler.ListOvertime)
					r.Put("/{id}", ledgerHandler.UpdateOvertime)
					r.Delete("/{id}", ledgerHandler.DeleteOvertime)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", leaveHandler.Create)
					r.Get("/", leaveHandler.List)
					r.Put("/{id}", leaveHandler.Update)
					r.Delete("/{id}", leaveHandler.Delete)
				})

				r.Route("/company", func(r chi.Router) {
					r.Get("/", companyHandler.Get)
					r.Put("/", companyHandler.Save)
				})

				r.Route("/accounts", func(r chi.Router) {
					r.Post("/", accountHandler.Create)
					r.Get("/", accountHandler.List)
					r.Put("/{userID}/active", accountHandler.SetActive)
					r.Put("/{userID}/password", accountHandler.ResetPassword)
					r.Delete("/{userID}", accountHandler.Delete)
					r.Get("/check-ins", accountHandler.ListCheckIns)
				})
			})
		})
	})

	return r
}
