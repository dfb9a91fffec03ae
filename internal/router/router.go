package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_mw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sparkboard-dev/sparkboard/internal/middleware/metrics"
	"github.com/sparkboard-dev/sparkboard/internal/setup"
)

// New wires all routes. Everything under /v1 except auth requires a valid
// token; there are no public boards or feeds.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_mw.RequestID)
	r.Use(chi_mw.Recoverer)
	r.Use(chi_mw.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Uploaded media is served straight from the local object store.
	r.Handle("/media/*", http.StripPrefix("/media/",
		http.FileServer(http.Dir(deps.Config.Public.MediaRoot))))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Get("/me", h.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())

			r.Route("/boards", func(r chi.Router) {
				r.Post("/", h.CreateBoard)
				r.Get("/", h.ListBoards)
				r.Get("/{board_id}", h.GetBoard)
				r.Delete("/{board_id}", h.DeleteBoard)

				r.Post("/{board_id}/sparks", h.CreateSpark)
				r.Get("/{board_id}/sparks", h.ListSparks)
			})

			r.Route("/sparks/{spark_id}", func(r chi.Router) {
				r.Patch("/position", h.MoveSpark)
				r.Patch("/size", h.ResizeSpark)
				r.Delete("/", h.DeleteSpark)
			})

			r.Post("/media", h.UploadMedia)

			r.Route("/community", func(r chi.Router) {
				r.Get("/feed", h.Feed)
				r.Post("/posts", h.SharePost)
				r.Delete("/posts/{post_id}", h.UnsharePost)
			})
		})
	})

	return r
}
