package http

import (
	"encoding/json"
	"net/http"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

// createCategory persists a new category created by the authenticated
// requester and returns the bare created record. Duplicate names answer 400.
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	category, err := h.services.CategoryService.Create(ctx, user.UserID, input)
	if err != nil {
		log.Err(err).Int64("creator_id", user.UserID).Msg("category creation failed")
		http.Error(w, "category creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

// listCategories returns every category as a bare array.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.List(ctx)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		http.Error(w, "category listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

// articlesByCategory returns every article referencing the category as a
// bare array. Malformed and unknown category ids both answer 404.
func (h *Handler) articlesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	articles, err := h.services.CategoryService.Articles(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("per-category article listing failed")
		http.Error(w, "per-category article listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, articles, http.StatusOK)
}
