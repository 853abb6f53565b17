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

type CommentHandler struct {
	comments *repositories.CommentRepository
	logger   *zap.Logger
}

func NewCommentHandler(comments *repositories.CommentRepository, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

func (h *CommentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateCommentRequest](r)

	comment := &models.Comment{
		PostID:          chi.URLParam(r, "id"),
		UserID:          middleware.UserID(r),
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	}
	if err := h.comments.Create(comment); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	comments, err := h.comments.ListByPost(
		chi.URLParam(r, "id"),
		queryInt(q.Get("page"), 1),
		queryInt(q.Get("limit"), 0),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

func (h *CommentHandler) RepliesHandler(w http.ResponseWriter, r *http.Request) {
	replies, err := h.comments.ListReplies(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"replies": replies})
}

func (h *CommentHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdateCommentRequest](r)

	comment, err := h.comments.UpdateOwned(chi.URLParam(r, "id"), middleware.UserID(r), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.comments.DeleteOwned(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.comments.ToggleLike(chi.URLParam(r, "id"), middleware.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
