package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/handlers"
)

func init() { Register(registerResources) }

func registerResources(r chi.Router, d deps.Deps) {
	r.Route("/api/resources", func(r chi.Router) {
		r.Get("/", handlers.ListResources(d))
		r.With(d.RateLimiter).Post("/", handlers.CreateResource(d))
		r.With(d.RateLimiter).Put("/{id}", handlers.UpdateResource(d))
		r.With(d.RateLimiter).Delete("/{id}", handlers.DeleteResource(d))
	})
}
