package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	return r.DB.Create(notification).Error
}

func (r *NotificationRepository) ListByUser(userID string, unreadOnly bool, page, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	if page < 1 {
		page = 1
	}

	query := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	notifications := []models.Notification{}
	err := query.Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(id, userID string) error {
	var notification models.Notification
	err := r.DB.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return ErrAccessDenied
	}
	return r.DB.Model(&notification).Update("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID string) (int64, error) {
	result := r.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) DeleteOwned(id, userID string) error {
	var notification models.Notification
	err := r.DB.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return ErrAccessDenied
	}
	return r.DB.Delete(&notification).Error
}

// DeleteOlderThan drops notifications created before the cutoff. Used by
// the retention job.
func (r *NotificationRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.DB.Delete(&models.Notification{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
