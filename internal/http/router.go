package http

import (
	"net/http"

	"jobpilot/internal/auth"
	"jobpilot/internal/config"
	"jobpilot/internal/employer"
	"jobpilot/internal/http/handler"
	mw "jobpilot/internal/http/middleware"
	"jobpilot/internal/http/respond"
	"jobpilot/internal/job"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Services struct {
	Auth     *auth.Service
	Jobs     *job.Service
	Employer *employer.Service
}

func NewRouter(cfg config.Config, svc Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(mw.CORS(cfg))

	r.Handle("/uploads/*", http.StripPrefix("/uploads", mw.NoListing(http.FileServer(http.Dir(cfg.UploadDir)))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respond.JSON(w, http.StatusOK, map[string]string{
				"status":  "ok",
				"message": "JobPilot API is running",
			})
		})

		ah := &handler.AuthHandler{Svc: svc.Auth}
		r.Post("/auth/signup", ah.Signup)
		r.Post("/auth/login", ah.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(svc.Auth))

			r.Get("/auth/me", ah.Me)

			jh := &handler.JobHandler{Svc: svc.Jobs}
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", jh.List)
				r.Post("/", jh.Create)
				r.Get("/{id}", jh.Get)
				r.Put("/{id}", jh.Update)
				r.Delete("/{id}", jh.Delete)
			})

			eh := &handler.EmployerHandler{Svc: svc.Employer, MaxBytes: cfg.MaxLogoBytes}
			r.Route("/employer", func(r chi.Router) {
				r.Get("/profile", eh.Profile)
				r.Put("/profile", eh.UpdateProfile)
				r.Post("/logo", eh.UploadLogo)
			})
		})
	})

	return r
}
