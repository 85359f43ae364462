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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)

		r.Post("/users", h.register)
		r.Post("/users/login", h.login)
		r.Get("/users", h.listUsers)

		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.articlesByCategory)
	})

	// article reads are public by default; the owner-scoped policy puts
	// them behind authentication so the service can scope by requester
	router.Group(func(r chi.Router) {
		if h.ownerScopedReads {
			r.Use(h.auth)
		}
		r.Get("/articles", h.listArticles)
		r.Get("/articles/{id}", h.getArticle)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/articles", h.createArticle)
		r.Patch("/articles/{id}", h.updateArticle)
		r.Delete("/articles/{id}", h.deleteArticle)

		r.Post("/categories", h.createCategory)

		r.Get("/users/me", h.me)
		r.Delete("/users/me/token", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
