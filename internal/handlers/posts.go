package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaughan-dsouza/BlogPosts/internal/models"
	"github.com/vaughan-dsouza/BlogPosts/internal/store"
	"github.com/vaughan-dsouza/BlogPosts/internal/utils"
)

type PostHandler struct {
	Store store.PostStore
}

func NewPostHandler(s store.PostStore) *PostHandler {
	return &PostHandler{Store: s}
}

// decodeInput reads and validates a create/update body. It writes the
// error response itself and reports false on failure.
func decodeInput(w http.ResponseWriter, r *http.Request) (models.PostInput, bool) {
	var in models.PostInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		return in, false
	}
	if err := in.Validate(); err != nil {
		utils.Error(w, err)
		return in, false
	}
	return in, true
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	post, err := h.Store.Create(r.Context(), in.Fields())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, post)
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{Term: r.URL.Query().Get("term")}

	posts, err := h.Store.Find(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, posts)
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.Store.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, post)
}

// ---------------------- UPDATE ----------------------

// UpdatePost replaces all four mutable fields; omitted tags are cleared.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	post, err := h.Store.Replace(r.Context(), chi.URLParam(r, "id"), in.Fields())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, post)
}

// ---------------------- DELETE ----------------------

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
