package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/handlers"
)

func init() { Register(registerSubscribers) }

func registerSubscribers(r chi.Router, d deps.Deps) {
	r.Route("/api/subscribers", func(r chi.Router) {
		r.Get("/", handlers.ListEmails(d, d.Directory.Subscribers))
		r.With(d.RateLimiter).Post("/", handlers.AddEmail(d, d.Directory.Subscribers.Add))
		r.With(d.RateLimiter).Delete("/", handlers.RemoveEmail(d, d.Directory.Subscribers))
	})
}
