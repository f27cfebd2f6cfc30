package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanjanb/k-tech-nain/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/me", handler(s.getV1Me))

			r.Route("/products", func(r chi.Router) {
				r.Post("/", handler(s.postV1Product))
				r.Get("/", handler(s.getV1Products))
				r.Get("/{id}", handler(s.getV1Product))
				r.Put("/{id}", handler(s.putV1Product))
			})

			r.Route("/deals", func(r chi.Router) {
				r.Post("/", handler(s.postV1Deal))
				r.Get("/", handler(s.getV1Deals))
				r.Get("/{id}", handler(s.getV1Deal))
				r.Post("/{id}/confirm", handler(s.postV1DealConfirm))
				r.Get("/{id}/notifications", handler(s.getV1DealNotifications))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", handler(s.getV1Notifications))
				r.Post("/{id}/redrive", handler(s.postV1NotificationRedrive))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, toTransportError(err))
		}
	}
}
