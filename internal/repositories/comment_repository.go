package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type CommentRepository struct {
	DB *gorm.DB
}

// Create adds a comment, or a one-level-deep reply when ParentCommentID is
// set. A parent must exist, belong to the same post, and be top-level.
func (r *CommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", comment.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if comment.ParentCommentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, "id = ?", *comment.ParentCommentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCommentNotFound
				}
				return err
			}
			if parent.PostID != comment.PostID || parent.ParentCommentID != nil {
				return ErrInvalidParent
			}
			if err := bumpCounter(tx, &models.Comment{}, parent.ID, "replies_count", 1); err != nil {
				return err
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return bumpCounter(tx, &models.Post{}, comment.PostID, "comments_count", 1)
	})
}

func (r *CommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.DB.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns top-level comments (oldest first) with their replies
// loaded per parent.
func (r *CommentRepository) ListByPost(postID string, page, limit int) ([]models.Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	if page < 1 {
		page = 1
	}

	comments := []models.Comment{}
	err := r.DB.Where("post_id = ? AND parent_comment_id IS NULL", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) ListReplies(parentID string) ([]models.Comment, error) {
	replies := []models.Comment{}
	err := r.DB.Where("parent_comment_id = ?", parentID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (r *CommentRepository) UpdateOwned(id, requestingUserID, content string) (*models.Comment, error) {
	comment, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != requestingUserID {
		return nil, ErrAccessDenied
	}

	if err := r.DB.Model(comment).Updates(map[string]interface{}{
		"content":    content,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteOwned removes a comment, its replies and their likes, keeping the
// post's and parent's counters in step.
func (r *CommentRepository) DeleteOwned(id, requestingUserID string) error {
	comment, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if comment.UserID != requestingUserID {
		return ErrAccessDenied
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var replyIDs []string
		if err := tx.Model(&models.Comment{}).Where("parent_comment_id = ?", id).Pluck("id", &replyIDs).Error; err != nil {
			return err
		}

		removed := []string{id}
		removed = append(removed, replyIDs...)
		if err := tx.Delete(&models.CommentLike{}, "comment_id IN ?", removed).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Comment{}, "id IN ?", removed).Error; err != nil {
			return err
		}

		if comment.ParentCommentID != nil {
			if err := bumpCounter(tx, &models.Comment{}, *comment.ParentCommentID, "replies_count", -1); err != nil {
				return err
			}
		}
		return bumpCounter(tx, &models.Post{}, comment.PostID, "comments_count", -len(removed))
	})
}

// ToggleLike mirrors PostRepository.ToggleLike for comments.
func (r *CommentRepository) ToggleLike(commentID, userID string) (*models.ToggleLikeResponse, error) {
	var out models.ToggleLikeResponse
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		var like models.CommentLike
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like).Error
		switch {
		case err == nil:
			removed, err := removeLike(tx, &models.CommentLike{}, "comment_id = ? AND user_id = ?", commentID, userID)
			if err != nil {
				return err
			}
			if removed {
				if err := bumpCounter(tx, &models.Comment{}, commentID, "likes_count", -1); err != nil {
					return err
				}
			}
			out.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := bumpCounter(tx, &models.Comment{}, commentID, "likes_count", 1); err != nil {
				return err
			}
			out.Liked = true
		default:
			return err
		}

		return tx.Model(&models.Comment{}).Select("likes_count").
			Where("id = ?", commentID).Scan(&out.LikesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
