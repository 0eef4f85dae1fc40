package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/chronnix/chronnix-backend-go/internal/handler/http/middleware"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Account   AccountHandler
	Worker    WorkerHandler
	Project   ProjectHandler
	Timesheet TimesheetHandler
	Team      TeamHandler
	Client    ClientHandler
	Dashboard DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, env, frontendURL string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "chronnix"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/request-code", h.Auth.RequestCode)
			r.Post("/verify-code", h.Auth.VerifyCode)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/account", func(r chi.Router) {
				r.Get("/", h.Account.GetProfile)
				r.Put("/", h.Account.UpdateProfile)
				r.Route("/company-settings", func(r chi.Router) {
					r.Get("/", h.Account.GetCompanySettings)
					r.Put("/", h.Account.UpdateCompanySettings)
					r.Post("/logo", h.Account.UploadLogo)
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Route("/{workerID}", func(r chi.Router) {
					r.Get("/", h.Worker.Get)
					r.Put("/", h.Worker.Update)
					r.Delete("/", h.Worker.Delete)
					r.Get("/compliance", h.Worker.CheckCompliance)

					r.Route("/costs", func(r chi.Router) {
						r.Post("/", h.Worker.AddCost)
						r.Put("/{costID}", h.Worker.UpdateCost)
						r.Delete("/{costID}", h.Worker.DeleteCost)
					})

					r.Post("/documents", h.Worker.AddDocument)
				})
			})

			r.Route("/documents/{documentID}", func(r chi.Router) {
				r.Get("/download", h.Worker.DownloadDocument)
				r.Delete("/", h.Worker.DeleteDocument)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", h.Project.Get)
					r.Put("/", h.Project.Update)
					r.Delete("/", h.Project.Delete)

					r.Route("/workers", func(r chi.Router) {
						r.Get("/", h.Project.GetRoster)
						r.Put("/{workerID}", h.Project.Assign)
						r.Delete("/{workerID}", h.Project.Unassign)
					})

					r.Route("/timesheet", func(r chi.Router) {
						r.Get("/", h.Timesheet.Get)
						r.Post("/entries", h.Timesheet.UpsertEntry)
						r.Get("/export", h.Timesheet.Export)
					})
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Post("/", h.Team.Create)
				r.Route("/{teamID}", func(r chi.Router) {
					r.Get("/", h.Team.Get)
					r.Put("/", h.Team.Update)
					r.Delete("/", h.Team.Delete)
					r.Post("/members", h.Team.AddMember)
					r.Delete("/members/{workerID}", h.Team.RemoveMember)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				// Profiles carry the id; the read side is addressed by slug.
				r.Route("/profiles/{clientID}", func(r chi.Router) {
					r.Put("/", h.Client.Update)
					r.Delete("/", h.Client.Delete)
				})
				r.Get("/{slug}", h.Client.Get)
			})

			r.Get("/dashboard", h.Dashboard.GetSnapshot)
		})
	})

	return r
}
