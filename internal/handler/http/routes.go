package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTimeout)
	router.Use(h.withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/sign_up/check_dup", h.checkDup)
		r.Post("/sign_up/save", h.signUp)
		r.Post("/sign_in", h.signIn)
	})

	// protected POST API routes: auth failure yields a structured 401
	router.Group(func(r chi.Router) {
		r.Use(h.authAPI)
		r.Post("/update_profile", h.updateProfile)
		r.Post("/posting", h.posting)
		r.Post("/update_like", h.updateLike)
	})

	// protected GET routes: auth failure redirects to the login view
	router.Group(func(r chi.Router) {
		r.Use(h.authRedirect)
		r.Get("/get_posts", h.getPosts)
		r.Get("/user/{username}", h.userPage)
	})

	return router
}
