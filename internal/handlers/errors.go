package handlers

import (
	"errors"
	"net/http"

	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
	"github.com/george-bobby/prepify-interview-sub001/internal/workflow"
)

// writeError maps service and repository errors onto status codes. Every
// error body carries the same shape; nothing is retried at this layer.
func writeError(w http.ResponseWriter, err error) {
	var providerErr *llm.ProviderError
	switch {
	case errors.Is(err, repositories.ErrAccessDenied):
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "access_denied",
			Message: "You do not have access to this resource",
		})
	case errors.Is(err, repositories.ErrInterviewNotFound),
		errors.Is(err, repositories.ErrFeedbackNotFound),
		errors.Is(err, repositories.ErrPostNotFound),
		errors.Is(err, repositories.ErrCommentNotFound),
		errors.Is(err, repositories.ErrShareNotFound),
		errors.Is(err, repositories.ErrNotificationNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, repositories.ErrAlreadyShared):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "already_shared",
			Message: "Post already shared by user",
		})
	case errors.Is(err, workflow.ErrAlreadyCompleted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "already_completed",
			Message: "Interview already completed",
		})
	case errors.Is(err, repositories.ErrIndexOutOfRange),
		errors.Is(err, repositories.ErrInvalidParent),
		errors.Is(err, workflow.ErrNoResponses):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, workflow.ErrInsufficientCredits):
		utils.JSON(w, http.StatusPaymentRequired, models.ErrorResponse{
			Code:    "insufficient_credits",
			Message: err.Error(),
		})
	case errors.As(err, &providerErr):
		// Generation failures are not retried and carry the provider's
		// own error code through.
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    providerErr.Code,
			Message: providerErr.Message,
		})
	default:
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: err.Error(),
		})
	}
}
