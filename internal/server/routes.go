package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"numconv/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.getIndex)
	r.Post("/convert", s.postConvert)
	r.Get("/test", handler(s.getTest))

	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", handler(s.postAPIConvert))
		r.Get("/currencies", handler(s.getAPICurrencies))
		r.Get("/history", handler(s.getAPIHistory))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
