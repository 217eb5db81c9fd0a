package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/handlers"
)

func init() { Register(registerUsers) }

func registerUsers(r chi.Router, d deps.Deps) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handlers.ListEmails(d, d.Directory.Users))
		r.With(d.RateLimiter).Post("/", handlers.AddEmail(d, d.Directory.Users.Add))
		r.With(d.RateLimiter).Delete("/", handlers.RemoveEmail(d, d.Directory.Users))
	})
}
