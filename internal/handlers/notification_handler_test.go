package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
)

func newNotificationEnv(t *testing.T) (*NotificationHandler, *repositories.NotificationRepository) {
	t.Helper()
	notifications := &repositories.NotificationRepository{DB: testhelpers.SetupTestDB(t)}
	return NewNotificationHandler(notifications, zap.NewNop()), notifications
}

func TestNotificationListHandler(t *testing.T) {
	handler, notifications := newNotificationEnv(t)
	first := &models.Notification{UserID: "user-1", Type: "feedback_ready", Message: "ready"}
	if err := notifications.Create(first); err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}
	if err := notifications.Create(&models.Notification{UserID: "other", Type: "feedback_ready", Message: "ready"}); err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}

	rec := performAs[*models.CreatePostRequest]("user-1", http.MethodGet, "/api/v1/notifications", "", handler.ListHandler, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(resp.Notifications) != 1 {
		t.Fatalf("expected only the user's notifications, got %d", len(resp.Notifications))
	}

	t.Run("unread filter", func(t *testing.T) {
		if err := notifications.MarkRead(first.ID, "user-1"); err != nil {
			t.Fatalf("mark read failed: %v", err)
		}
		rec := performAs[*models.CreatePostRequest]("user-1", http.MethodGet, "/api/v1/notifications?unreadOnly=true", "", handler.ListHandler, nil)
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if len(resp.Notifications) != 0 {
			t.Fatalf("expected no unread notifications, got %d", len(resp.Notifications))
		}
	})
}

func TestNotificationMarkReadHandler(t *testing.T) {
	handler, notifications := newNotificationEnv(t)
	notification := &models.Notification{UserID: "user-1", Type: "feedback_ready", Message: "ready"}
	if err := notifications.Create(notification); err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}

	rec := performAs[*models.CreatePostRequest]("intruder", http.MethodPatch, "/api/v1/notifications/"+notification.ID+"/read", "", handler.MarkReadHandler, map[string]string{"id": notification.ID})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = performAs[*models.CreatePostRequest]("user-1", http.MethodPatch, "/api/v1/notifications/"+notification.ID+"/read", "", handler.MarkReadHandler, map[string]string{"id": notification.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationDeleteHandler(t *testing.T) {
	handler, notifications := newNotificationEnv(t)
	notification := &models.Notification{UserID: "user-1", Type: "feedback_ready", Message: "ready"}
	if err := notifications.Create(notification); err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}

	rec := performAs[*models.CreatePostRequest]("user-1", http.MethodDelete, "/api/v1/notifications/"+notification.ID, "", handler.DeleteHandler, map[string]string{"id": notification.ID})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = performAs[*models.CreatePostRequest]("user-1", http.MethodDelete, "/api/v1/notifications/"+notification.ID, "", handler.DeleteHandler, map[string]string{"id": notification.ID})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a deleted notification, got %d", rec.Code)
	}
}
