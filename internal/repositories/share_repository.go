package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type ShareRepository struct {
	DB *gorm.DB
}

// Create records a share and bumps the post's counter. A duplicate
// (post, user) pair is rejected; the unique index makes the check hold
// under concurrency: of two racing shares exactly one commits.
func (r *ShareRepository) Create(share *models.Share) error {
	if share.ID == "" {
		share.ID = uuid.New().String()
	}
	if share.ShareType == "" {
		share.ShareType = models.ShareTypeDirect
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", share.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Create(share).Error; err != nil {
			return err
		}
		return bumpCounter(tx, &models.Post{}, share.PostID, "shares_count", 1)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyShared
	}
	return err
}

// Delete unshares, removing the record and decrementing the counter.
func (r *ShareRepository) Delete(postID, userID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Share{}, "post_id = ? AND user_id = ?", postID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrShareNotFound
		}
		return bumpCounter(tx, &models.Post{}, postID, "shares_count", -1)
	})
}

func (r *ShareRepository) GetByPostAndUser(postID, userID string) (*models.Share, error) {
	var share models.Share
	err := r.DB.First(&share, "post_id = ? AND user_id = ?", postID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, err
	}
	return &share, nil
}
