package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akarimli/tweetline/internal/apperrors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// unmatched paths, including ids rejected by route patterns, still get
	// the structured error body
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, apperrors.RouteNotFound())
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, apperrors.MethodNotAllowed())
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/token", h.login)
	})

	// routes behind session restoration
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/tweets", h.listTweets)
		r.Post("/api/tweets", h.createTweet)
		r.Get("/api/tweets/{id:[0-9]+}", h.getTweet)
		r.Put("/api/tweets/{id:[0-9]+}", h.updateTweet)
		r.Delete("/api/tweets/{id:[0-9]+}", h.deleteTweet)

		r.Get("/api/users/{id:[0-9]+}/tweets", h.listUserTweets)
	})

	return router
}
