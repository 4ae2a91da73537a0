package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaughan-dsouza/BlogPosts/internal/middleware"
	"github.com/vaughan-dsouza/BlogPosts/internal/store"
	"github.com/vaughan-dsouza/BlogPosts/internal/utils"
)

type Handler struct {
	Store store.PostStore
	Posts *PostHandler
	Docs  *DocsHandler
}

func NewHandler(s store.PostStore) *Handler {
	return &Handler{
		Store: s,
		Posts: NewPostHandler(s),
		Docs:  NewDocsHandler(),
	}
}

// Routes builds the full HTTP surface of the service.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)

	r.Get("/healthz", h.Health)

	r.Get("/api-docs", h.Docs.UI)
	r.Get("/api-docs/openapi.json", h.Docs.Spec)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.Posts.GetPosts)
		r.Post("/", h.Posts.CreatePost)
		r.Get("/{id}", h.Posts.GetPostByID)
		r.Put("/{id}", h.Posts.UpdatePost)
		r.Delete("/{id}", h.Posts.DeletePost)
	})

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "Database connection is down"})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "Database connection is healthy"})
}
