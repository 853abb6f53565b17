package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

// PostHandler serves the feed: posts, likes and shares.
type PostHandler struct {
	posts  *repositories.PostRepository
	shares *repositories.ShareRepository
	logger *zap.Logger
}

func NewPostHandler(posts *repositories.PostRepository, shares *repositories.ShareRepository, logger *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, shares: shares, logger: logger}
}

func (h *PostHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreatePostRequest](r)

	post := &models.Post{
		UserID:  middleware.UserID(r),
		Content: req.Content,
	}
	if err := h.posts.Create(post); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, post)
}

func (h *PostHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	posts, err := h.posts.List(repositories.PostFilter{
		AuthorID:  q.Get("author"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      queryInt(q.Get("page"), 1),
		Limit:     queryInt(q.Get("limit"), 0),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (h *PostHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdatePostRequest](r)

	post, err := h.posts.UpdateOwned(chi.URLParam(r, "id"), middleware.UserID(r), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.DeleteOwned(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.posts.ToggleLike(chi.URLParam(r, "id"), middleware.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *PostHandler) ShareHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SharePostRequest](r)

	share := &models.Share{
		PostID:    chi.URLParam(r, "id"),
		UserID:    middleware.UserID(r),
		ShareType: req.ShareType,
		QuoteText: req.QuoteText,
	}
	if err := h.shares.Create(share); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, share)
}

func (h *PostHandler) UnshareHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.shares.Delete(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
