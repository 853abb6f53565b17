package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

type NotificationHandler struct {
	notifications *repositories.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationHandler(notifications *repositories.NotificationRepository, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

func (h *NotificationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	notifications, err := h.notifications.ListByUser(
		middleware.UserID(r),
		queryBool(q.Get("unreadOnly")),
		queryInt(q.Get("page"), 1),
		queryInt(q.Get("limit"), 0),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

func (h *NotificationHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkRead(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"read": true})
}

func (h *NotificationHandler) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	updated, err := h.notifications.MarkAllRead(middleware.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"updated": updated})
}

func (h *NotificationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.DeleteOwned(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
