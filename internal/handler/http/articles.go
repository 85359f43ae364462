package http

import (
	"encoding/json"
	"net/http"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

// requesterID extracts the authenticated user's id from the request context
// when one is present. Public article reads run without a user; the service
// treats a nil requester as an unscoped read.
func requesterID(r *http.Request) *int64 {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return nil
	}
	return &user.UserID
}

// listArticles returns all articles visible to the requester wrapped in an
// {articles} envelope.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	articles, err := h.services.ArticleService.List(ctx, requesterID(r))
	if err != nil {
		log.Err(err).Msg("article listing failed")
		http.Error(w, "article listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ArticlesResponse{Articles: articles}, http.StatusOK)
}

// createArticle persists a new article owned by the authenticated requester
// and returns the bare created record.
func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	article, err := h.services.ArticleService.Create(ctx, user.UserID, input)
	if err != nil {
		log.Err(err).Int64("creator_id", user.UserID).Msg("article creation failed")
		http.Error(w, "article creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

// getArticle returns a single article wrapped in an {article} envelope.
// Malformed and unknown ids both answer 404.
func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	article, err := h.services.ArticleService.Get(ctx, chi.URLParam(r, "id"), requesterID(r))
	if err != nil {
		log.Err(err).Msg("article lookup failed")
		http.Error(w, "article lookup failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ArticleResponse{Article: article}, http.StatusOK)
}

// updateArticle applies a partial update to the requester's own article and
// returns the updated record in an {article} envelope. Articles of other
// users answer 404, exactly like missing ones.
func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var patch models.ArticlePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	article, err := h.services.ArticleService.Update(ctx, chi.URLParam(r, "id"), user.UserID, patch)
	if err != nil {
		log.Err(err).Int64("creator_id", user.UserID).Msg("article update failed")
		http.Error(w, "article update failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ArticleResponse{Article: article}, http.StatusOK)
}

// deleteArticle removes the requester's own article and returns the deleted
// record in an {article} envelope.
func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	article, err := h.services.ArticleService.Delete(ctx, chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		log.Err(err).Int64("creator_id", user.UserID).Msg("article deletion failed")
		http.Error(w, "article deletion failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ArticleResponse{Article: article}, http.StatusOK)
}
