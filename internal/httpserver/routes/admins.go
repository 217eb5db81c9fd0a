package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/handlers"
)

func init() { Register(registerAdmins) }

func registerAdmins(r chi.Router, d deps.Deps) {
	r.Route("/api/admins", func(r chi.Router) {
		r.Get("/", handlers.ListEmails(d, d.Directory.Admins))
		// Adding an admin cascades into the user set.
		r.With(d.RateLimiter).Post("/", handlers.AddEmail(d, d.Directory.AddAdmin))
		r.With(d.RateLimiter).Delete("/", handlers.RemoveAdmin(d))
	})
}
